package errors_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	zetaerrors "github.com/zetaprover/zeta/internal/errors"
)

func TestClassifyRecognizesEachKind(t *testing.T) {
	require.Equal(t, zetaerrors.KindTimeout, zetaerrors.Classify(zetaerrors.ErrTimeout.New("budget exhausted")))
	require.Equal(t, zetaerrors.KindConfig, zetaerrors.Classify(zetaerrors.ErrConfig.New("no ordering")))
	require.Equal(t, zetaerrors.KindUser, zetaerrors.Classify(zetaerrors.ErrUser.New("bad input")))
	require.Equal(t, zetaerrors.KindUser, zetaerrors.Classify(zetaerrors.ErrSignatureConflict.New("f")))
}

func TestClassifyDefaultsUntaxonomizedErrorsToInternal(t *testing.T) {
	require.Equal(t, zetaerrors.KindInternal, zetaerrors.Classify(zetaerrors.ErrInconsistentBinding.New("X")))
	require.Equal(t, zetaerrors.KindInternal, zetaerrors.Classify(zetaerrors.ErrTypeMismatch.New("bad app")))
}

func TestKindStringNames(t *testing.T) {
	require.Equal(t, "user", zetaerrors.KindUser.String())
	require.Equal(t, "timeout", zetaerrors.KindTimeout.String())
	require.Equal(t, "internal", zetaerrors.KindInternal.String())
	require.Equal(t, "config", zetaerrors.KindConfig.String())
}
