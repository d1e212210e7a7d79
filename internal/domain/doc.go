// Package domain defines the core business entities of the presentation
// pipeline: sections planned for a topic, slides produced from those
// sections, and the assembled presentation structure returned to callers.
package domain
