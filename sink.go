// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jfive

// A Sink constructs the values of a document model for a Parser. The parser
// builds each container by calling Object or Array, then adding children to
// it with Append or Set, and it does not otherwise inspect the values.
//
// Append and Set return the updated container, so a Sink may use either
// reference or value types for its containers.
type Sink[V any] interface {
	Object() V                    // a new empty object
	Array() V                     // a new empty array
	Append(arr, v V) V            // add v to the end of arr
	Set(obj V, key string, v V) V // add the member key: v to obj
	String(s string) V
	Number(n *Number) V
	Bool(b bool) V
	Null() V
}

// AnySink is a Sink that builds plain Go values: objects are
// map[string]any, arrays are []any, and the scalars are string, *Number,
// bool and nil. When an object repeats a key, the last value wins.
type AnySink struct{}

func (AnySink) Object() any { return make(map[string]any) }
func (AnySink) Array() any  { return []any{} }

func (AnySink) Append(arr, v any) any { return append(arr.([]any), v) }

func (AnySink) Set(obj any, key string, v any) any {
	obj.(map[string]any)[key] = v
	return obj
}

func (AnySink) String(s string) any  { return s }
func (AnySink) Number(n *Number) any { return n }
func (AnySink) Bool(b bool) any      { return b }
func (AnySink) Null() any            { return nil }
