package unicodeclass_test

import (
	"testing"

	"github.com/markdown-core/tokenizer/internal/unicodeclass"
)

func TestClassifyAbsent(t *testing.T) {
	if got := unicodeclass.Classify(0, false); got != unicodeclass.Whitespace {
		t.Errorf("absent neighbor: got %v, want Whitespace", got)
	}
}

func TestClassifySpace(t *testing.T) {
	if got := unicodeclass.Classify(' ', true); got != unicodeclass.Whitespace {
		t.Errorf("space: got %v, want Whitespace", got)
	}
	if got := unicodeclass.Classify('\n', true); got != unicodeclass.Whitespace {
		t.Errorf("newline: got %v, want Whitespace", got)
	}
}

func TestClassifyPunctuation(t *testing.T) {
	cases := []rune{'.', ',', '"', '(', ')', '*', '_', '!', '-'}
	for _, r := range cases {
		if got := unicodeclass.Classify(r, true); got != unicodeclass.Punctuation {
			t.Errorf("%q: got %v, want Punctuation", r, got)
		}
	}
}

func TestClassifyUnicodePunctuationAndSymbol(t *testing.T) {
	if got := unicodeclass.Classify('—', true); got != unicodeclass.Punctuation { // em dash
		t.Errorf("em dash: got %v, want Punctuation", got)
	}
	if got := unicodeclass.Classify('©', true); got != unicodeclass.Punctuation { // copyright sign (So)
		t.Errorf("copyright sign: got %v, want Punctuation", got)
	}
}

func TestClassifyOther(t *testing.T) {
	cases := []rune{'a', 'Z', '0', '9', '中'}
	for _, r := range cases {
		if got := unicodeclass.Classify(r, true); got != unicodeclass.Other {
			t.Errorf("%q: got %v, want Other", r, got)
		}
	}
}
