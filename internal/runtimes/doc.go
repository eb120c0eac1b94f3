// Package runtimes defines the Adapter contract each managed ecosystem
// implements and a Registry that holds the available adapters.
//
// An adapter knows three things about a version: where its archive lives,
// what format the archive is, and which single top-level directory the
// archive unpacks to. Everything else (downloading, extracting, committing,
// activating) is generic and lives in the install and activate packages.
//
// Adapters live in subpackages (node, python, golang, bun). Adding an
// ecosystem means adding one subpackage and one Register call.
package runtimes
