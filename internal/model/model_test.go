package model_test

import (
	"math"
	"testing"
	"time"

	"github.com/ja-he/lunadash/internal/model"
)

func TestPhaseNameFor(t *testing.T) {
	t.Run("thresholds", func(t *testing.T) {
		testcases := []struct {
			phase    float64
			expected model.PhaseName
		}{
			{0, model.NewMoon},
			{0.03, model.NewMoon},
			{0.031, model.WaxingCrescent},
			{0.2199, model.WaxingCrescent},
			{0.22, model.FirstQuarter},
			{0.28, model.FirstQuarter},
			{0.281, model.WaxingGibbous},
			{0.47, model.FullMoon},
			{0.5, model.FullMoon},
			{0.53, model.FullMoon},
			{0.6, model.WaningGibbous},
			{0.72, model.ThirdQuarter},
			{0.78, model.ThirdQuarter},
			{0.79, model.WaningCrescent},
			{0.9699, model.WaningCrescent},
			{0.97, model.NewMoon},
			{0.999, model.NewMoon},
		}
		for _, tc := range testcases {
			if actual := model.PhaseNameFor(tc.phase); actual != tc.expected {
				t.Errorf("phase %f: expected '%s', got '%s'", tc.phase, tc.expected, actual)
			}
		}
	})

	t.Run("always one of eight", func(t *testing.T) {
		known := map[model.PhaseName]bool{}
		for _, n := range model.AllPhaseNames {
			known[n] = true
		}
		for i := 0; i <= 10000; i++ {
			phase := float64(i) / 10000
			if !known[model.PhaseNameFor(phase)] {
				t.Fatalf("phase %f yielded unknown name '%s'", phase, model.PhaseNameFor(phase))
			}
		}
	})

	t.Run("slug", func(t *testing.T) {
		if actual := model.ThirdQuarter.Slug(); actual != "third-quarter" {
			t.Errorf("expected 'third-quarter', got '%s'", actual)
		}
	})
}

func TestDistancePercentage(t *testing.T) {
	t.Run("reference points", func(t *testing.T) {
		if actual := model.DistancePercentage(model.AveragePerigeeKm); actual != 0 {
			t.Errorf("expected 0 at perigee, got %f", actual)
		}
		if actual := model.DistancePercentage(model.AverageApogeeKm); actual != 100 {
			t.Errorf("expected 100 at apogee, got %f", actual)
		}
		mid := (model.AveragePerigeeKm + model.AverageApogeeKm) / 2
		if actual := model.DistancePercentage(mid); math.Abs(actual-50) > 1e-9 {
			t.Errorf("expected 50 at midpoint, got %f", actual)
		}
	})
	t.Run("clamped", func(t *testing.T) {
		for _, km := range []float64{-1e9, 0, 1, 356500, 406700, 1e12, math.Inf(1), math.Inf(-1), math.NaN()} {
			actual := model.DistancePercentage(km)
			if actual < 0 || actual > 100 || math.IsNaN(actual) {
				t.Errorf("distance %f: percentage %f out of [0,100]", km, actual)
			}
		}
	})
}

func TestMoonValues(t *testing.T) {
	t.Run("age", func(t *testing.T) {
		if actual := model.MoonAgeDays(0.5); math.Abs(actual-14.765) > 1e-9 {
			t.Errorf("expected 14.765, got %f", actual)
		}
	})
	t.Run("angular diameter", func(t *testing.T) {
		actual := model.AngularDiameterArcsec(384400)
		if math.Abs(actual-1864.1) > 0.1 {
			t.Errorf("expected ~1864.1 arcsec, got %f", actual)
		}
	})
	t.Run("degrees", func(t *testing.T) {
		if actual := model.FormatDegrees(math.Pi / 4); actual != "45.00°" {
			t.Errorf("expected '45.00°', got '%s'", actual)
		}
		if actual := model.FormatDegrees(-0.5); actual != "-28.65°" {
			t.Errorf("expected '-28.65°', got '%s'", actual)
		}
	})
	t.Run("visibility", func(t *testing.T) {
		if model.Visibility(0.1) != "Above Horizon" {
			t.Error("expected positive altitude to be above horizon")
		}
		if model.Visibility(0) != "Below Horizon" {
			t.Error("expected zero altitude to be below horizon")
		}
	})
	t.Run("shadow", func(t *testing.T) {
		full := model.ShadowFor(0.5)
		if full.Scale != 0 || full.Offset != 0 || full.Waning {
			t.Errorf("unexpected full moon shadow %+v", full)
		}
		firstQuarter := model.ShadowFor(0.25)
		if firstQuarter.Scale != 0.5 || firstQuarter.Offset != 0.25 || firstQuarter.Waning {
			t.Errorf("unexpected first quarter shadow %+v", firstQuarter)
		}
		thirdQuarter := model.ShadowFor(0.75)
		if thirdQuarter.Scale != 0.5 || thirdQuarter.Offset != -0.25 || !thirdQuarter.Waning {
			t.Errorf("unexpected third quarter shadow %+v", thirdQuarter)
		}
	})
}

func TestFormatClock(t *testing.T) {
	evening := time.Date(2024, 3, 9, 19, 5, 0, 0, time.UTC)
	morning := time.Date(2024, 3, 9, 7, 45, 0, 0, time.UTC)

	t.Run("24h", func(t *testing.T) {
		if actual := model.FormatClock(evening, model.Format24Hour); actual != "19:05" {
			t.Errorf("expected '19:05', got '%s'", actual)
		}
		if actual := model.FormatClock(morning, model.Format24Hour); actual != "07:45" {
			t.Errorf("expected '07:45', got '%s'", actual)
		}
	})
	t.Run("12h", func(t *testing.T) {
		if actual := model.FormatClock(evening, model.Format12Hour); actual != "07:05 PM" {
			t.Errorf("expected '07:05 PM', got '%s'", actual)
		}
		if actual := model.FormatClock(morning, model.Format12Hour); actual != "07:45 AM" {
			t.Errorf("expected '07:45 AM', got '%s'", actual)
		}
	})
	t.Run("zero", func(t *testing.T) {
		for _, f := range []model.TimeFormat{model.Format24Hour, model.Format12Hour} {
			if actual := model.FormatClock(time.Time{}, f); actual != model.NotAvailable {
				t.Errorf("expected '%s', got '%s'", model.NotAvailable, actual)
			}
		}
	})
	t.Run("idempotent", func(t *testing.T) {
		for _, f := range []model.TimeFormat{model.Format24Hour, model.Format12Hour} {
			first := model.FormatClock(evening, f)
			for i := 0; i < 3; i++ {
				if again := model.FormatClock(evening, f); again != first {
					t.Errorf("format %s: '%s' != '%s'", f, again, first)
				}
			}
		}
	})
	t.Run("toggle", func(t *testing.T) {
		var f model.TimeFormat
		if f != model.Format24Hour {
			t.Fatal("expected 24h default")
		}
		if f.Toggled() != model.Format12Hour || f.Toggled().Toggled() != model.Format24Hour {
			t.Error("toggling is not an involution")
		}
	})
	t.Run("parse", func(t *testing.T) {
		for in, expected := range map[string]model.TimeFormat{"12h": model.Format12Hour, "12": model.Format12Hour, "24H": model.Format24Hour, "": model.Format24Hour} {
			actual, err := model.ParseTimeFormat(in)
			if err != nil {
				t.Errorf("unexpected error for '%s': %s", in, err.Error())
			}
			if actual != expected {
				t.Errorf("'%s': expected %s, got %s", in, expected, actual)
			}
		}
		if _, err := model.ParseTimeFormat("13h"); err == nil {
			t.Error("expected error for '13h'")
		}
	})
}

func TestFormatThousands(t *testing.T) {
	for in, expected := range map[float64]string{
		0:        "0",
		999.4:    "999",
		1000:     "1,000",
		363300:   "363,300",
		384400.6: "384,401",
		1234567:  "1,234,567",
	} {
		if actual := model.FormatThousands(in); actual != expected {
			t.Errorf("%f: expected '%s', got '%s'", in, expected, actual)
		}
	}
}

func TestCountdowns(t *testing.T) {
	t.Run("next picture update", func(t *testing.T) {
		before := time.Date(2024, 5, 1, 5, 59, 0, 0, time.UTC)
		if actual := model.NextPictureUpdate(before); !actual.Equal(time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC)) {
			t.Errorf("expected same-day update, got %s", actual)
		}
		after := time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC)
		if actual := model.NextPictureUpdate(after); !actual.Equal(time.Date(2024, 5, 2, 6, 0, 0, 0, time.UTC)) {
			t.Errorf("expected next-day update, got %s", actual)
		}
	})
	t.Run("picture countdown", func(t *testing.T) {
		now := time.Date(2024, 5, 1, 4, 30, 15, 0, time.UTC)
		if actual := model.PictureCountdown(now); actual != "Next picture in: 01:29:45" {
			t.Errorf("unexpected countdown '%s'", actual)
		}
	})
	t.Run("phase countdown", func(t *testing.T) {
		now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		date := now.Add(3*24*time.Hour + 14*time.Hour + 59*time.Minute)
		if actual := model.PhaseCountdown(now, date); actual != "≈ 3d 14h" {
			t.Errorf("unexpected countdown '%s'", actual)
		}
		if actual := model.PhaseCountdown(date, now); actual != "≈ 0d 0h" {
			t.Errorf("expected past date to count as zero, got '%s'", actual)
		}
	})
}

func TestPicture(t *testing.T) {
	p := model.Picture{Date: "2024-03-09", URL: "https://example.com/a.jpg", MediaType: "image"}
	if p.DisplayDate() != "March 9, 2024" {
		t.Errorf("unexpected display date '%s'", p.DisplayDate())
	}
	if p.ImageURL() != p.URL {
		t.Error("expected regular url without hdurl")
	}
	p.HDURL = "https://example.com/a_hd.jpg"
	if p.ImageURL() != p.HDURL {
		t.Error("expected hdurl to be preferred")
	}
	if !p.IsImage() {
		t.Error("expected image")
	}

	for in, expected := range map[string]string{
		"":              "Public Domain",
		"  ":            "Public Domain",
		"Public Domain": "Public Domain",
		"public domain": "Public Domain",
		" Jane Doe\n":   "Copyright: Jane Doe",
		"NASA, ESA":     "Copyright: NASA, ESA",
	} {
		if actual := model.CopyrightLine(in); actual != expected {
			t.Errorf("'%s': expected '%s', got '%s'", in, expected, actual)
		}
	}
}

func TestCoordinates(t *testing.T) {
	if !model.FallbackCoordinates.IsFallback() {
		t.Error("fallback not recognized")
	}
	if model.FallbackCoordinates.String() != "52.52°, 13.40°" {
		t.Errorf("unexpected string '%s'", model.FallbackCoordinates.String())
	}
	if (model.Coordinates{Latitude: 91}).Valid() {
		t.Error("latitude 91 should be invalid")
	}
}

func TestIsLit(t *testing.T) {
	cases := []struct {
		name        string
		phase       float64
		left, right bool
	}{
		{"new", 0, false, false},
		{"first quarter", 0.25, false, true},
		{"full", 0.5, true, true},
		{"last quarter", 0.75, true, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := model.IsLit(c.phase, -0.5, 0.1); got != c.left {
				t.Errorf("left half lit = %t, want %t", got, c.left)
			}
			if got := model.IsLit(c.phase, 0.5, 0.1); got != c.right {
				t.Errorf("right half lit = %t, want %t", got, c.right)
			}
		})
	}
	if model.IsLit(0.5, 1, 1) {
		t.Error("point outside the disc is lit")
	}
	if !model.IsLit(0.1, 0.95, 0) || model.IsLit(0.1, 0.5, 0) {
		t.Error("waxing crescent should only light the right rim")
	}
}
