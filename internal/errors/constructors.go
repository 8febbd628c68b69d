package errors

// Convenience functions for common error patterns

// Input errors

func MissingInput() *InjectError {
	return New(CategoryInput, SeverityFatal, "no input file given")
}

func InputNotFound(path string) *InjectError {
	return New(CategoryInput, SeverityFatal, "input file not found").
		WithContext("path", path)
}

func InputIsDirectory(path string) *InjectError {
	return New(CategoryInput, SeverityFatal, "input path is a directory, expected a file").
		WithContext("path", path)
}

// Config errors

func ConfigLoadFailed(path string, cause error) *InjectError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file could not be loaded").
		WithContext("path", path)
}

// Asset errors

func AssetPathNotFound(spec, kind string) *InjectError {
	return New(CategoryAsset, SeverityFatal, "asset path matches no glob, directory, or file").
		WithContext("spec", spec).
		WithContext("kind", kind)
}

func AssetReadFailed(path string, cause error) *InjectError {
	return Wrap(cause, CategoryAsset, SeverityFatal, "asset file could not be read").
		WithContext("path", path)
}

// Revision errors

func RevisionLookupFailed(cause error) *InjectError {
	return Wrap(cause, CategoryRevision, SeverityFatal, "source-control revision lookup failed")
}

// Filesystem errors

func WriteFailed(path string, cause error) *InjectError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "output write failed").
		WithContext("path", path)
}

// Internal errors

func InternalError(message string, cause error) *InjectError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
