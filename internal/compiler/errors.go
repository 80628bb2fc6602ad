package compiler

import "fmt"

// MacroError reports a macro expansion that produced something other than
// a List, or whose head is not a Symbol.
type MacroError struct {
	Macro   string
	Message string
}

func (e *MacroError) Error() string {
	return fmt.Sprintf("macro error in %q: %s", e.Macro, e.Message)
}

// FormError reports a special form invoked with arguments of the wrong
// shape: a missing parameter vector, a misaligned *branch chain, an
// arity mismatch on `.`, and so on.
type FormError struct {
	Form    string
	Message string
}

func (e *FormError) Error() string {
	return fmt.Sprintf("%s: %s", e.Form, e.Message)
}

// NameError reports an illegal identifier use. The only kind currently
// raised is VarargNotAllowed: "..." referenced outside a variadic scope.
type NameError struct {
	Kind string
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("%s: %q is not allowed here", e.Kind, e.Name)
}

// BridgeError wraps a failure to load or run the source generated by the
// reflective *compiler bridge, propagated from the host loader.
type BridgeError struct {
	Err error
}

func (e *BridgeError) Error() string {
	return fmt.Sprintf("*compiler bridge: %s", e.Err)
}

func (e *BridgeError) Unwrap() error { return e.Err }
