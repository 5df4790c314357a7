// Copyright 2024 The Mipidsi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mipidsi

import "fmt"

// ConfigError is returned by Builder.Init when the requested configuration
// is invalid for the chosen model. It is reported before any bus traffic.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "mipidsi: invalid configuration: " + e.Reason
}

// InitError is returned by Builder.Init when the controller power-up
// sequence fails. It wraps the underlying transport error.
type InitError struct {
	Model string
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("mipidsi: %s initialization failed: %v", e.Model, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
