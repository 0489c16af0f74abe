package domain

import "go.trai.ch/zerr"

var (
	// ErrIncompleteOptions is returned when a resolved option key has no value in any layer.
	ErrIncompleteOptions = zerr.New("incomplete options")

	// ErrConfigReadFailed is returned when an explicit configuration source cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read configuration")

	// ErrConfigParseFailed is returned when an explicit configuration source is malformed.
	ErrConfigParseFailed = zerr.New("failed to parse configuration")

	// ErrElmVersionUnknown is returned when no Elm project file reveals the compiler version.
	ErrElmVersionUnknown = zerr.New("unable to determine elm version")

	// ErrURLPrefixUnknown is returned when no Symfony front controller is found.
	ErrURLPrefixUnknown = zerr.New("unable to determine url prefix")

	// ErrInvalidCommand is returned when a console or worker command line cannot be parsed.
	ErrInvalidCommand = zerr.New("invalid command line")

	// ErrConsoleFailed is returned when a Symfony console command exits unsuccessfully.
	ErrConsoleFailed = zerr.New("symfony console command failed")

	// ErrConsoleOutputInvalid is returned when a console command prints unexpected output.
	ErrConsoleOutputInvalid = zerr.New("unexpected symfony console output")

	// ErrWorkerSpawnFailed is returned when the transpiler worker process cannot be started.
	ErrWorkerSpawnFailed = zerr.New("failed to start worker")

	// ErrWorkerClosed is returned when the worker connection ended before a response arrived.
	ErrWorkerClosed = zerr.New("worker connection closed")

	// ErrWorkerWriteFailed is returned when a request cannot be sent to the worker.
	ErrWorkerWriteFailed = zerr.New("failed to send request to worker")

	// ErrWorkerKindMismatch is returned when a response type differs from its request kind.
	ErrWorkerKindMismatch = zerr.New("worker response type does not match request")

	// ErrWorkerFailed is returned when the worker reports a failed generation.
	ErrWorkerFailed = zerr.New("worker failed to generate code")

	// ErrInvalidRequest is returned when a generation request does not carry a payload for its kind.
	ErrInvalidRequest = zerr.New("invalid generation request")

	// ErrFileReadFailed is returned when a source or output file cannot be read.
	ErrFileReadFailed = zerr.New("failed to read file")

	// ErrFileWriteFailed is returned when a generated file cannot be written.
	ErrFileWriteFailed = zerr.New("failed to write file")

	// ErrDirCreateFailed is returned when an output directory cannot be created.
	ErrDirCreateFailed = zerr.New("failed to create directory")

	// ErrGlobFailed is returned when a file pattern cannot be expanded.
	ErrGlobFailed = zerr.New("failed to expand pattern")

	// ErrRoutingFailed is returned when the routing generation task fails.
	ErrRoutingFailed = zerr.New("routing generation failed")

	// ErrTranslationsFailed is returned when at least one translation catalog failed to generate.
	ErrTranslationsFailed = zerr.New("translation generation failed")

	// ErrWatcherFailed is returned when the file watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to start file watcher")
)
