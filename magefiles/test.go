//go:build mage

// Copyright (c) 2026 mesh-intelligence. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const coverProfile = "coverage.out"

// Test groups test targets.
type Test mg.Namespace

// Unit runs every package test.
func (Test) Unit() error {
	return sh.RunV(binGo, "test", "./...")
}

// All runs every package test with -v.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-v", "./...")
}

// Cover runs the tests with a coverage profile and prints the summary.
func (Test) Cover() error {
	if err := sh.RunV(binGo, "test", "-coverprofile="+coverProfile, "./..."); err != nil {
		return err
	}
	return sh.RunV(binGo, "tool", "cover", "-func="+coverProfile)
}
