// Package testsupport provides fixture builders shared by package tests.
package testsupport
