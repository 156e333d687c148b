// Package patch implements the partial-update pipeline: JSON-Patch style
// operations applied over a closed set of known paths per entity, guarded so
// identity and reference fields can never be rewritten.
package patch

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Supported operation kinds.
const (
	OpReplace = "replace"
	OpAdd     = "add"
	OpRemove  = "remove"
)

// Operation is one patch instruction: an op targeting a field path with an
// optional value. Transient request input, never persisted.
type Operation struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
}

var (
	// ErrEmptyPatch rejects a patch request with no operations.
	ErrEmptyPatch = errors.New("empty patch")
	// ErrProtectedPath rejects any operation targeting an immutable field.
	ErrProtectedPath = errors.New("patch targets a protected field")
	// ErrUnknownOp fails the patch on an unsupported operation kind.
	ErrUnknownOp = errors.New("unknown patch operation")
	// ErrUnknownPath fails the patch on a path outside the entity's set.
	ErrUnknownPath = errors.New("unknown patch path")
	// ErrPathNotFound fails a replace whose target is not currently set.
	ErrPathNotFound = errors.New("patch path not present")
	// ErrInvalidValue fails the patch on a missing or wrongly typed value.
	ErrInvalidValue = errors.New("invalid patch value")
)

// Guard scans every operation before anything is applied and rejects the
// whole request if the list is empty or any path names a protected field.
func Guard(ops []Operation, protected ...string) error {
	if len(ops) == 0 {
		return ErrEmptyPatch
	}
	for _, op := range ops {
		for _, path := range protected {
			if op.Path == path || strings.HasPrefix(op.Path, path+"/") {
				return fmt.Errorf("%w: %s", ErrProtectedPath, op.Path)
			}
		}
	}
	return nil
}

func decode[T any](op Operation) (T, error) {
	var value T
	if len(op.Value) == 0 {
		return value, fmt.Errorf("%w: missing value for %s", ErrInvalidValue, op.Path)
	}
	if err := json.Unmarshal(op.Value, &value); err != nil {
		return value, fmt.Errorf("%w: %s", ErrInvalidValue, op.Path)
	}
	return value, nil
}

// applyScalar handles fields that are always present on the entity, so
// replace and add behave the same and remove is not allowed.
func applyScalar[T any](op Operation, field *T) error {
	switch op.Op {
	case OpReplace, OpAdd:
		value, err := decode[T](op)
		if err != nil {
			return err
		}
		*field = value
		return nil
	case OpRemove:
		return fmt.Errorf("%w: cannot remove required field %s", ErrInvalidValue, op.Path)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownOp, op.Op)
	}
}

// applyPtr handles optional fields. replace requires the field to be set,
// add creates or overwrites, remove clears.
func applyPtr[T any](op Operation, field **T) error {
	switch op.Op {
	case OpReplace:
		if *field == nil {
			return fmt.Errorf("%w: %s", ErrPathNotFound, op.Path)
		}
		value, err := decode[T](op)
		if err != nil {
			return err
		}
		*field = &value
		return nil
	case OpAdd:
		value, err := decode[T](op)
		if err != nil {
			return err
		}
		*field = &value
		return nil
	case OpRemove:
		*field = nil
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownOp, op.Op)
	}
}

// applyList handles whole-list paths over any list-backed column.
func applyList[L ~[]E, E any](op Operation, field *L) error {
	switch op.Op {
	case OpReplace:
		if *field == nil {
			return fmt.Errorf("%w: %s", ErrPathNotFound, op.Path)
		}
		value, err := decode[[]E](op)
		if err != nil {
			return err
		}
		*field = L(value)
		return nil
	case OpAdd:
		value, err := decode[[]E](op)
		if err != nil {
			return err
		}
		*field = L(value)
		return nil
	case OpRemove:
		*field = nil
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownOp, op.Op)
	}
}

// applyAppend handles "/field/-" paths: add appends one element. The backing
// array is copied so a failed later operation never leaks into the stored
// entity.
func applyAppend[L ~[]E, E any](op Operation, field *L) error {
	if op.Op != OpAdd {
		return fmt.Errorf("%w: %s on append path %s", ErrUnknownOp, op.Op, op.Path)
	}
	value, err := decode[E](op)
	if err != nil {
		return err
	}
	out := make(L, len(*field), len(*field)+1)
	copy(out, *field)
	*field = append(out, value)
	return nil
}
