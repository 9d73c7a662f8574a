package installer

import (
	"github.com/joomcode/errorx"
)

var (
	ErrorsNamespace    = errorx.NewNamespace("installer")
	DownloadError      = ErrorsNamespace.NewType("download_error")
	ArchiveEmptyError  = ErrorsNamespace.NewType("archive_empty", errorx.NotFound())
	ExtractionError    = ErrorsNamespace.NewType("extraction_error")
	InstallationError  = ErrorsNamespace.NewType("installation_error")
	ConfigurationError = ErrorsNamespace.NewType("configuration_error")

	urlProperty        = errorx.RegisterPrintableProperty("url")
	filePathProperty   = errorx.RegisterPrintableProperty("file_path")
	statusCodeProperty = errorx.RegisterPrintableProperty("status_code")
)

const (
	downloadErrorMsg      = "failed to download from URL '%s'"
	archiveEmptyErrorMsg  = "archive '%s' is empty or missing"
	extractionErrorMsg    = "failed to extract file '%s' to '%s'"
	installationErrorMsg  = "failed to install toolchain into '%s'"
	configurationErrorMsg = "failed to configure toolchain '%s'"
)

func NewDownloadError(cause error, url string, statusCode int) *errorx.Error {
	err := DownloadError.New(downloadErrorMsg, url).
		WithProperty(urlProperty, url)

	if statusCode > 0 {
		err = err.WithProperty(statusCodeProperty, statusCode)
	}

	if cause != nil {
		err = err.WithUnderlyingErrors(cause)
	}

	return err
}

func NewArchiveEmptyError(filePath string) *errorx.Error {
	return ArchiveEmptyError.New(archiveEmptyErrorMsg, filePath).
		WithProperty(filePathProperty, filePath)
}

func NewExtractionError(cause error, filePath, destPath string) *errorx.Error {
	err := ExtractionError.New(extractionErrorMsg, filePath, destPath).
		WithProperty(filePathProperty, filePath)

	if cause != nil {
		err = err.WithUnderlyingErrors(cause)
	}

	return err
}

func NewInstallationError(cause error, dir string) *errorx.Error {
	err := InstallationError.New(installationErrorMsg, dir).
		WithProperty(filePathProperty, dir)

	if cause != nil {
		err = err.WithUnderlyingErrors(cause)
	}

	return err
}

// NewConfigurationError wraps cause, usually a failed arduino-cli command,
// keeping its exit code reachable through runner.ExitCode.
func NewConfigurationError(cause error, exe string) *errorx.Error {
	return ConfigurationError.Wrap(cause, configurationErrorMsg, exe).
		WithProperty(filePathProperty, exe)
}
