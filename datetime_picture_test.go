package fnformat

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScanDateTimePicture(t *testing.T) {
	cases := []struct {
		picture string
		want    []PictureSegment
	}{
		{
			picture: "Value: [Y0001]]]",
			want: []PictureSegment{
				{Literal: "Value: "},
				{Component: &DateTimeComponent{Specifier: 'Y', Picture: "0001"}},
				{Literal: "]"},
			},
		},
		{
			picture: "[D01]/[M01]/[Y]",
			want: []PictureSegment{
				{Component: &DateTimeComponent{Specifier: 'D', Picture: "01"}},
				{Literal: "/"},
				{Component: &DateTimeComponent{Specifier: 'M', Picture: "01"}},
				{Literal: "/"},
				{Component: &DateTimeComponent{Specifier: 'Y', Picture: "1"}},
			},
		},
		{
			picture: "[[[F]]]",
			want: []PictureSegment{
				{Literal: "["},
				{Component: &DateTimeComponent{Specifier: 'F', Picture: "Nn"}},
				{Literal: "]"},
			},
		},
		{
			picture: "[MNn,3-3] [ P ] [m] [z]",
			want: []PictureSegment{
				{Component: &DateTimeComponent{Specifier: 'M', Picture: "Nn", Width: &Width{Min: 3, Max: 3}}},
				{Literal: " "},
				{Component: &DateTimeComponent{Specifier: 'P', Picture: "n"}},
				{Literal: " "},
				{Component: &DateTimeComponent{Specifier: 'm', Picture: "01"}},
				{Literal: " "},
				{Component: &DateTimeComponent{Specifier: 'z', Picture: "00:00"}},
			},
		},
		{
			picture: "[Y,2] [FNn,*-3] [E]",
			want: []PictureSegment{
				{Component: &DateTimeComponent{Specifier: 'Y', Picture: "1", Width: &Width{Min: 2, Max: Unbounded}}},
				{Literal: " "},
				{Component: &DateTimeComponent{Specifier: 'F', Picture: "Nn", Width: &Width{Min: 1, Max: 3}}},
				{Literal: " "},
				{Component: &DateTimeComponent{Specifier: 'E', Picture: "N"}},
			},
		},
		{
			picture: "[Y9,999,*] [D#,#01,2-2]",
			want: []PictureSegment{
				{Component: &DateTimeComponent{Specifier: 'Y', Picture: "9,999", Width: &Width{Min: 1, Max: Unbounded}}},
				{Literal: " "},
				{Component: &DateTimeComponent{Specifier: 'D', Picture: "#,#01", Width: &Width{Min: 2, Max: 2}}},
			},
		},
		{
			picture: "no components",
			want:    []PictureSegment{{Literal: "no components"}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.picture, func(t *testing.T) {
			got, err := ScanDateTimePicture(tc.picture)
			if err != nil {
				t.Fatalf("ScanDateTimePicture(%q): %v", tc.picture, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("ScanDateTimePicture(%q) mismatch (-want +got):\n%s", tc.picture, diff)
			}
		})
	}
}

func TestScanDateTimePictureErrors(t *testing.T) {
	cases := []struct {
		picture string
		kind    error
		code    ErrorCode
	}{
		{"[Y]]", ErrUnbalancedBracket, CodeInvalidDateTimeSyntax},
		{"a]b", ErrUnbalancedBracket, CodeInvalidDateTimeSyntax},
		{"[Y0001", ErrUnmatchedOpenBracket, CodeInvalidDateTimeSyntax},
		{"[]", ErrUnknownComponent, CodeInvalidDateTimeSyntax},
		{"[Q]", ErrUnknownComponent, CodeInvalidDateTimeSyntax},
		{"[Y,0]", ErrInvalidWidth, CodeInvalidComponent},
		{"[Y,x]", ErrInvalidWidth, CodeInvalidComponent},
		{"[Y,4-2]", ErrInvalidWidth, CodeInvalidComponent},
		{"[Y,2-x]", ErrInvalidWidth, CodeInvalidComponent},
	}

	for _, tc := range cases {
		t.Run(tc.picture, func(t *testing.T) {
			_, err := ScanDateTimePicture(tc.picture)
			if !errors.Is(err, tc.kind) {
				t.Fatalf("ScanDateTimePicture(%q) error = %v want %v", tc.picture, err, tc.kind)
			}
			if got := Code(err); got != tc.code {
				t.Fatalf("Code() = %q want %q", got, tc.code)
			}
			var perr *PictureError
			if !errors.As(err, &perr) || perr.Picture != tc.picture {
				t.Fatalf("expected *PictureError for %q, got %#v", tc.picture, err)
			}
		})
	}
}
