/*
Copyright 2023 The Crossplane Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package pointer

import (
	"k8s.io/utils/ptr"
)

// StringValue converts the supplied string pointer to a string, returning the
// empty string if the pointer is nil.
func StringValue(v *string) string {
	return ptr.Deref(v, "")
}

// BoolValue converts the supplied bool pointer to a bool, returning false if
// the pointer is nil.
func BoolValue(v *bool) bool {
	return ptr.Deref(v, false)
}

// Int64Value converts the supplied int64 pointer to a int64, returning
// 0 if the pointer is nil.
func Int64Value(v *int64) int64 {
	return ptr.Deref(v, 0)
}

// ToOrNilIfZeroValue returns a pointer to val if it does NOT match the default
// value of T. Otherwise it returns nil.
func ToOrNilIfZeroValue[T comparable](val T) *T {
	var defaultVal T
	if val == defaultVal {
		return nil
	}
	return &val
}
