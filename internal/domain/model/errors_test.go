package model_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/okian/draftroots/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseError(t *testing.T) {
	Convey("Given a parse error with a cause", t, func() {
		_, cause := strconv.Atoi("x")
		err := fmt.Errorf("filter rookies: %w", &model.ParseError{Row: 4, Column: "draft_year", Value: "x", Err: cause})

		Convey("Then it matches the parse kind and not the configuration kind", func() {
			So(errors.Is(err, model.ErrParse), ShouldBeTrue)
			So(errors.Is(err, model.ErrConfiguration), ShouldBeFalse)
		})

		Convey("And it unwraps to its cause", func() {
			So(errors.Is(err, strconv.ErrSyntax), ShouldBeTrue)
		})

		Convey("And the message names row, column and value", func() {
			So(err.Error(), ShouldContainSubstring, "row 4")
			So(err.Error(), ShouldContainSubstring, `draft_year "x"`)
		})
	})

	Convey("Given a parse error without a row", t, func() {
		err := &model.ParseError{Row: -1, Column: "season", Value: "96"}

		Convey("Then the message omits the row", func() {
			So(err.Error(), ShouldEqual, `parse season "96"`)
		})
	})
}

func TestConfigurationError(t *testing.T) {
	Convey("Given configuration errors", t, func() {
		missing := &model.ConfigurationError{Column: "college", Source: "seasons.csv"}
		unsupported := &model.ConfigurationError{Source: "seasons.xlsx"}

		Convey("Then both match the configuration kind", func() {
			So(errors.Is(missing, model.ErrConfiguration), ShouldBeTrue)
			So(errors.Is(unsupported, model.ErrConfiguration), ShouldBeTrue)
			So(errors.Is(missing, model.ErrParse), ShouldBeFalse)
		})

		Convey("And the messages describe the problem", func() {
			So(missing.Error(), ShouldContainSubstring, `missing required column "college"`)
			So(unsupported.Error(), ShouldContainSubstring, "unsupported dataset source")
		})
	})
}

func TestInstitutionAverage_MarshalJSON(t *testing.T) {
	Convey("Given institution averages", t, func() {
		Convey("Then a number is written as is", func() {
			b, err := json.Marshal(model.InstitutionAverage{Institution: "Duke", Average: 0.25})
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, `{"institution":"Duke","average":0.25}`)
		})

		Convey("And NaN is written as null", func() {
			b, err := json.Marshal(model.InstitutionAverage{Institution: "Nowhere", Average: math.NaN()})
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, `{"institution":"Nowhere","average":null}`)
		})
	})
}
