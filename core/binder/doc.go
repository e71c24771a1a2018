// Package binder maps HTTP form submissions onto Go structs.
//
// Form handles application/x-www-form-urlencoded and multipart/form-data bodies
// using `form` struct tags:
//
//	type SignIn struct {
//		Username string `form:"username"`
//		Password string `form:"password,raw"`
//	}
//
//	var in SignIn
//	if err := binder.Form()(r, &in); err != nil {
//		// errors.Is(err, binder.ErrUnsupportedMediaType) etc.
//	}
//
// Scalars, pointers and slices of string, int, uint, float and bool are supported.
// String values are stripped of control characters unless the tag has the raw option.
package binder
