package infra

import (
	"errors"
	"log/slog"

	"camp-pricing/internal/pkg/errs"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr builds a RepositoryError marked with the matching domain kind,
// so use cases can branch with errs.Is without knowing the store.
func WrapRepoErr(kind RepositoryErrorKind, msg string, err error) error {
	if kind == KindDBFailure {
		args := []any{slog.String("kind", string(kind))}
		if err != nil {
			args = append(args, slog.String("error", err.Error()))
		}
		slog.Error("Repository error: "+msg, args...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	repoErr := RepositoryError{Kind: kind, msg: msg, err: err}
	switch kind {
	case KindNotFound:
		return errs.Mark(repoErr, errs.ErrNotFound)
	case KindConflict, KindDuplicateKey:
		return errs.Mark(repoErr, errs.ErrConcurrencyConflict)
	default:
		return repoErr
	}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound     RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure    RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey RepositoryErrorKind = "DUPLICATE_KEY"
	KindConflict     RepositoryErrorKind = "CONFLICT"
	KindCodec        RepositoryErrorKind = "CODEC"
)
