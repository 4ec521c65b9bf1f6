// Package taggederr provides a minimal tagged error type used as the error
// payload in Result pipelines.
//
// Key operations:
// - New/Wrap: construct an error stamped with a tag, a unique id and a UTC creation time
// - Tag/Message/Id/CreatedAt: read the stamped fields
// - Is: match errors by tag via errors.Is
// - HasTag: search a whole error chain for a tag
//
// Tags are plain strings compared literally; packages that produce tagged
// errors export their tags as constants.
package taggederr
