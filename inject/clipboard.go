package inject

import cb "github.com/atotto/clipboard"

func clipboardRead() (string, error) {
	return cb.ReadAll()
}

func clipboardCopy(text string) error {
	return cb.WriteAll(text)
}
