package de_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ofersa/serde/de"
)

func TestBaseVisitor_NoOverrides_EveryShapeRejectedWithTypeError(t *testing.T) {
	t.Parallel()

	vis := de.BaseVisitor{Desc: `a unicorn`}

	shapes := map[string]func() (any, error){
		`bool`:    func() (any, error) { return vis.VisitBool(true) },
		`int`:     func() (any, error) { return vis.VisitInt(42) },
		`uint`:    func() (any, error) { return vis.VisitUint(42) },
		`float`:   func() (any, error) { return vis.VisitFloat(4.2) },
		`string`:  func() (any, error) { return vis.VisitString(`hy`) },
		`bytes`:   func() (any, error) { return vis.VisitBytes([]byte(`hy`)) },
		`nil`:     func() (any, error) { return vis.VisitNil() },
		`some`:    func() (any, error) { return vis.VisitSome(de.ValueOf(1)) },
		`seq`:     func() (any, error) { return vis.VisitSeq(de.NewSliceSeq(nil)) },
		`map`:     func() (any, error) { return vis.VisitMap(de.NewMapEntries(nil)) },
		`variant`: func() (any, error) { return vis.VisitVariant(nil) },
	}

	for name, visit := range shapes {
		t.Run(name, func(t *testing.T) {
			_, err := visit()

			var typeErr *de.TypeError
			require.True(t, errors.As(err, &typeErr))
			require.Equal(t, `a unicorn`, typeErr.Expecting)
		})
	}
}

func TestBaseVisitor_NoDescriptionGiven_GenericExpectationUsed(t *testing.T) {
	t.Parallel()

	vis := de.BaseVisitor{}
	require.Equal(t, `a value`, vis.Expecting())
}

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	t.Run("type error names what arrived and what was expected", func(t *testing.T) {
		err := &de.TypeError{Got: "string \"hy\"", Expecting: `a boolean`}
		require.Equal(t, "invalid type: string \"hy\", expected a boolean", err.Error())
	})

	t.Run("value error names the out of domain value", func(t *testing.T) {
		err := &de.ValueError{Value: "integer `300`", Expecting: `an 8-bit signed integer`}
		require.Equal(t, "invalid value: integer `300`, expected an 8-bit signed integer", err.Error())
	})

	t.Run("length error names the wrong count", func(t *testing.T) {
		err := &de.LengthError{Len: 2, Expecting: `a sequence of 3 elements`}
		require.Equal(t, `invalid length 2, expected a sequence of 3 elements`, err.Error())
	})

	t.Run("unknown field error lists the candidates", func(t *testing.T) {
		err := &de.UnknownFieldError{Field: `Titel`, Expected: []string{`Title`, `Count`}}
		require.Equal(t, "unknown field \"Titel\", expected one of Title, Count", err.Error())

		empty := &de.UnknownFieldError{Field: `Titel`}
		require.Equal(t, "unknown field \"Titel\", there are no fields", empty.Error())
	})

	t.Run("unknown variant error lists the candidates", func(t *testing.T) {
		err := &de.UnknownVariantError{Variant: `Circel`, Expected: []string{`Circle`, `Point`}}
		require.Equal(t, "unknown variant \"Circel\", expected one of Circle, Point", err.Error())

		empty := &de.UnknownVariantError{Variant: `Circel`}
		require.Equal(t, "unknown variant \"Circel\", there are no variants", empty.Error())
	})

	t.Run("missing field error names the field", func(t *testing.T) {
		err := &de.MissingFieldError{Field: `Title`}
		require.Equal(t, "missing field \"Title\"", err.Error())
	})
}

func TestVisitor_MultipleShapesAccepted_VisitorNormalizesInternally(t *testing.T) {
	t.Parallel()

	// durations arrive either as a number of seconds or as a formatted string
	vis := newDurationVisitor()

	v, err := de.ValueOf(90).DeserializeAny(vis)
	require.Nil(t, err)
	require.Equal(t, 90, v)

	v, err = de.ValueOf(`2m`).DeserializeAny(vis)
	require.Nil(t, err)
	require.Equal(t, 120, v)

	_, err = de.ValueOf(true).DeserializeAny(vis)
	var typeErr *de.TypeError
	require.True(t, errors.As(err, &typeErr))
	require.Equal(t, `a duration in seconds or a duration string`, typeErr.Expecting)
}

type durationVisitor struct{ de.BaseVisitor }

func newDurationVisitor() durationVisitor {
	return durationVisitor{BaseVisitor: de.BaseVisitor{
		Desc: `a duration in seconds or a duration string`,
	}}
}

func (durationVisitor) VisitInt(v int64) (any, error) { return int(v), nil }

func (vis durationVisitor) VisitString(v string) (any, error) {
	switch v {
	case `2m`:
		return 120, nil
	default:
		return nil, &de.ValueError{Value: "string " + v, Expecting: vis.Expecting()}
	}
}
