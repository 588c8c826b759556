package pink

import (
	"errors"
	"io"
	"strings"
)

func registerIONatives(in *Interpreter) {
	in.RegisterNative("readLine", 0, 0, builtinReadLine)
	in.RegisterNative("read", 0, 0, builtinRead)
}

// builtinReadLine returns the next input line without its terminator, or
// null once input is exhausted.
func builtinReadLine(exec *Execution, args []Value) (Value, error) {
	line, err := exec.interp.stdin.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return NewNull(), errorf(KindInputError, "readLine: %v", err)
	}
	if line == "" && err != nil {
		return NewNull(), nil
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return NewString(line), nil
}

// builtinRead returns the next input character, or null at end of input.
func builtinRead(exec *Execution, args []Value) (Value, error) {
	r, _, err := exec.interp.stdin.ReadRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return NewNull(), nil
		}
		return NewNull(), errorf(KindInputError, "read: %v", err)
	}
	return NewChar(r), nil
}
