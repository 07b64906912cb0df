// Package entity defines the value types shared by the compositor, the page
// sessions and the process coordinator.
package entity

import "strconv"

// PageID uniquely identifies a page session within a process.
// The zero value is never assigned.
type PageID uint64

// FrameID uniquely identifies a frame within a process.
type FrameID uint64

// NavigationID identifies a navigation started by Load or LoadData.
type NavigationID uint64

// ResourceRequestID identifies an in-flight network request.
type ResourceRequestID uint64

// IsValid reports whether the id was assigned.
func (id PageID) IsValid() bool { return id != 0 }

// IsValid reports whether the id was assigned.
func (id FrameID) IsValid() bool { return id != 0 }

func (id PageID) String() string  { return strconv.FormatUint(uint64(id), 10) }
func (id FrameID) String() string { return strconv.FormatUint(uint64(id), 10) }
