package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *MDPagesError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *MDPagesError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Build pipeline errors

func BuildFailed(stage string, cause error) *MDPagesError {
	return Wrap(cause, CategoryBuild, SeverityFatal, "build failed").
		WithContext("stage", stage)
}

func InputDirError(path string, cause error) *MDPagesError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "input directory unavailable").
		WithContext("path", path)
}

func PageRenderError(page string, cause error) *MDPagesError {
	return Wrap(cause, CategoryRender, SeverityWarning, "page render failed").
		WithContext("page", page)
}

func PageWriteError(page string, cause error) *MDPagesError {
	return Wrap(cause, CategoryFileSystem, SeverityWarning, "page write failed").
		WithContext("page", page)
}

// Git errors

func GitCloneError(url string, cause error) *MDPagesError {
	return Wrap(cause, CategoryGit, SeverityFatal, "source clone failed").
		WithContext("url", url)
}

// Internal errors

func InternalError(message string, cause error) *MDPagesError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
