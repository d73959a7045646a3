// Package directory groups a static list of regions into pinned, common and
// alphabetical sections and filters it by a search query.
package directory
