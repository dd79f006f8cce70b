package heap

import "runtime"

// Site records the source location and caller-supplied variable name
// behind an allocation or free, the Go equivalent of the original
// allocator's __FILE__/__LINE__-capturing call-site macros.
type Site struct {
	File    string
	Line    int
	VarName string
}

// CallerSite captures the file and line of its own caller and tags it
// with varName. Call it directly at the Malloc/Free call site:
//
//	p, err := h.Malloc(n, heap.CallerSite("buf"), heap.FirstFit)
//
// so the reported location is the call site's, not a helper's.
func CallerSite(varName string) Site {
	_, file, line, _ := runtime.Caller(1)
	return Site{File: file, Line: line, VarName: varName}
}
