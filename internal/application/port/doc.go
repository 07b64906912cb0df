// Package port defines application-layer interfaces for external capabilities.
// Ports abstract the rendering engine, the embedding host, the platform
// window system and the IPC transport, so the compositor, page sessions and
// process coordinator stay independent of any specific implementation.
package port
