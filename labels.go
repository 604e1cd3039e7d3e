package pathtrie

import "iter"

// Labels yields the sep-separated labels of name from left to right.
// Empty labels are skipped, so "" yields nothing and addresses the root.
func Labels(name string, sep byte) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := 0
		for i := 0; i < len(name); i++ {
			if name[i] == sep {
				if part := name[start:i]; part != "" {
					if !yield(part) {
						return
					}
				}
				start = i + 1
			}
		}
		if start < len(name) {
			yield(name[start:])
		}
	}
}

// ReverseLabels yields the labels of name from right to left, so
// "www.example.com" with sep '.' gives "com", "example", "www".
func ReverseLabels(name string, sep byte) iter.Seq[string] {
	return func(yield func(string) bool) {
		end := len(name)
		for i := len(name) - 1; i >= 0; i-- {
			if name[i] == sep {
				if part := name[i+1 : end]; part != "" {
					if !yield(part) {
						return
					}
				}
				end = i
			}
		}
		if end > 0 {
			yield(name[:end])
		}
	}
}
