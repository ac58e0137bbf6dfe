package textio

import (
	"runtime"
	"strings"
)

const unknownFunction = "unknown"

// functionNameFromCaller resolves the function name skip frames up the
// stack, without package path. skip counts from this function itself:
// 0 is functionNameFromCaller, 1 its caller, and so on. runtime.Caller
// reports logical frames, so inlined calls keep the arithmetic intact.
func functionNameFromCaller(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return unknownFunction
	}
	return functionNameForPC(pc)
}

func functionNameForPC(pc uintptr) string {
	if pc == 0 {
		return unknownFunction
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return unknownFunction
	}
	return trimFunctionName(fn.Name())
}

func trimFunctionName(name string) string {
	if name == "" {
		return unknownFunction
	}
	// Remove package path and package prefix.
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return unknownFunction
	}
	return name
}
