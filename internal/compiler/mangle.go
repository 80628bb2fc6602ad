package compiler

import (
	"fmt"
	"strconv"
	"strings"
)

// reservedWords is the exact reserved-word set of the target language.
var reservedWords = map[string]bool{
	"and": true, "break": true, "do": true, "else": true, "elseif": true,
	"end": true, "false": true, "for": true, "function": true, "if": true,
	"in": true, "local": true, "nil": true, "not": true, "or": true,
	"repeat": true, "return": true, "then": true, "true": true, "until": true,
	"while": true,
}

func isIdentStart(b byte) bool {
	return b == '_' || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isIdentByte(b byte) bool {
	return isIdentStart(b) || ('0' <= b && b <= '9')
}

// Mangle renames a source identifier to a legal, unique target-language
// identifier, recording the mapping in scope. Calling Mangle twice with
// the same source name in the same lookup chain returns the same result.
func Mangle(scope *Scope, name string) (string, error) {
	if name == "..." {
		if !scope.Vararg {
			return "", &NameError{Kind: "VarargNotAllowed", Name: name}
		}
		return "...", nil
	}
	if existing, ok := lookupMangling(scope, name); ok {
		return existing, nil
	}

	candidate := sanitize(name)
	if unmangledExists(scope, candidate) {
		for i := 0; ; i++ {
			withSuffix := candidate + strconv.Itoa(i)
			if !unmangledExists(scope, withSuffix) {
				candidate = withSuffix
				break
			}
		}
	}

	scope.Manglings[name] = candidate
	scope.Unmanglings[candidate] = name
	return candidate, nil
}

// sanitize applies steps 3-4 of the mangling algorithm: prefix an
// underscore for reserved words or names starting with a non-identifier
// byte, then replace every disallowed byte with its base-36 byte-code
// digits so the result is deterministic and collision-resistant.
func sanitize(name string) string {
	var b strings.Builder
	if name == "" || !isIdentStart(name[0]) || reservedWords[name] {
		b.WriteByte('_')
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if isIdentByte(c) {
			b.WriteByte(c)
		} else {
			b.WriteString(strconv.FormatInt(int64(c), 36))
		}
	}
	return b.String()
}

// GenSym returns a fresh target-language identifier not yet used anywhere
// in scope's lookup chain, and records it so later calls never repeat it.
func GenSym(scope *Scope) string {
	for {
		name := fmt.Sprintf("_%d", scope.gensymCounter)
		scope.gensymCounter++
		if !unmangledExists(scope, name) {
			scope.Unmanglings[name] = name
			return name
		}
	}
}
