package scoring_test

import (
	"math"
	"testing"

	"github.com/okian/draftroots/internal/domain/model"
	"github.com/okian/draftroots/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func rookieWith(name string, s model.Stats) model.RookieRecord {
	return model.RookieRecord{PlayerSeasonRecord: model.PlayerSeasonRecord{PlayerName: name, Stats: s}}
}

func TestNormalizer_Score(t *testing.T) {
	Convey("Given a normalizer", t, func() {
		n := scoring.NewNormalizer()

		Convey("When one rookie holds every column max and another every column min", func() {
			rookies := []model.RookieRecord{
				rookieWith("max", model.Stats{Points: 30, Rebounds: 12, Assists: 9, NetRating: 8, TrueShooting: 0.62, Usage: 0.31}),
				rookieWith("min", model.Stats{Points: 2, Rebounds: 1, Assists: 0, NetRating: 0, TrueShooting: 0.31, Usage: 0.09}),
			}
			out := n.Score(rookies)

			Convey("Then they score exactly 1 and 0", func() {
				So(out[0].CompositeScore, ShouldEqual, 1.0)
				So(out[1].CompositeScore, ShouldEqual, 0.0)
			})
		})

		Convey("When a column has no variance", func() {
			rookies := []model.RookieRecord{
				rookieWith("a", model.Stats{Points: 10, Rebounds: 5, Assists: 5, NetRating: 5, TrueShooting: 0.5, Usage: 0.2}),
				rookieWith("b", model.Stats{Points: 20, Rebounds: 5, Assists: 5, NetRating: 5, TrueShooting: 0.5, Usage: 0.2}),
			}
			out := n.Score(rookies)

			Convey("Then that column contributes 0 instead of dividing by zero", func() {
				So(out[0].CompositeScore, ShouldEqual, 0.0)
				So(out[1].CompositeScore, ShouldAlmostEqual, 1.0/6.0, 1e-12)
				So(math.IsNaN(out[1].CompositeScore), ShouldBeFalse)
			})
		})

		Convey("When there is a single rookie", func() {
			out := n.Score([]model.RookieRecord{rookieWith("solo", model.Stats{Points: 15})})

			Convey("Then every column is constant and the score is 0", func() {
				So(out[0].CompositeScore, ShouldEqual, 0.0)
			})
		})

		Convey("When statistics are missing", func() {
			nan := math.NaN()
			rookies := []model.RookieRecord{
				rookieWith("missing", model.Stats{Points: nan, Rebounds: nan, Assists: nan, NetRating: nan, TrueShooting: nan, Usage: nan}),
				rookieWith("present", model.Stats{Points: 10, Rebounds: 4, Assists: 2, NetRating: 3, TrueShooting: 0.5, Usage: 0.2}),
			}
			out := n.Score(rookies)

			Convey("Then missing values are filled with 0 and rank as the worst", func() {
				So(out[0].Stats.Points, ShouldEqual, 0)
				So(out[0].Stats.Usage, ShouldEqual, 0)
				So(out[0].CompositeScore, ShouldEqual, 0.0)
				So(out[1].CompositeScore, ShouldEqual, 1.0)
			})
		})

		Convey("When a statistic is infinite", func() {
			rookies := []model.RookieRecord{
				rookieWith("inf", model.Stats{Points: math.Inf(1), Rebounds: math.Inf(-1), Assists: 2, NetRating: 3, TrueShooting: 0.5, Usage: 0.2}),
				rookieWith("finite", model.Stats{Points: 10, Rebounds: 4, Assists: 2, NetRating: 3, TrueShooting: 0.5, Usage: 0.2}),
			}
			out := n.Score(rookies)

			Convey("Then it is filled with 0 and scores stay finite in [0,1]", func() {
				So(out[0].Stats.Points, ShouldEqual, 0)
				So(out[0].Stats.Rebounds, ShouldEqual, 0)
				for _, r := range out {
					So(math.IsNaN(r.CompositeScore), ShouldBeFalse)
					So(r.CompositeScore, ShouldBeBetweenOrEqual, 0, 1)
				}
				So(out[0].CompositeScore, ShouldEqual, 0.0)
				So(out[1].CompositeScore, ShouldAlmostEqual, 2.0/6.0, 1e-12)
			})
		})

		Convey("When scoring mixed values", func() {
			rookies := []model.RookieRecord{
				rookieWith("a", model.Stats{Points: 0, Rebounds: 10, Assists: 1, NetRating: 2, TrueShooting: 0.4, Usage: 0.1}),
				rookieWith("b", model.Stats{Points: 5, Rebounds: 0, Assists: 3, NetRating: 0, TrueShooting: 0.6, Usage: 0.3}),
				rookieWith("c", model.Stats{Points: 10, Rebounds: 5, Assists: 2, NetRating: 1, TrueShooting: 0.5, Usage: 0.2}),
			}
			out := n.Score(rookies)

			Convey("Then each score is the mean of six normalized columns", func() {
				// a: pts 0, reb 1, ast 0, net 1, ts 0, usg 0
				So(out[0].CompositeScore, ShouldAlmostEqual, 2.0/6.0, 1e-12)
				// b: pts .5, reb 0, ast 1, net 0, ts 1, usg 1
				So(out[1].CompositeScore, ShouldAlmostEqual, 3.5/6.0, 1e-12)
				// c: pts 1, reb .5, ast .5, net .5, ts .5, usg .5
				So(out[2].CompositeScore, ShouldAlmostEqual, 3.5/6.0, 1e-12)
			})

			Convey("And every score lies in [0,1]", func() {
				for _, r := range out {
					So(r.CompositeScore, ShouldBeBetweenOrEqual, 0, 1)
				}
			})
		})

		Convey("When the rookie set is empty", func() {
			out := n.Score(nil)

			Convey("Then nothing is scored", func() {
				So(out, ShouldBeEmpty)
			})
		})
	})
}

func TestRange_Normalize(t *testing.T) {
	Convey("Given column ranges", t, func() {
		Convey("Then values map linearly into [0,1]", func() {
			r := scoring.Range{Min: -2, Max: 8}
			So(r.Normalize(-2), ShouldEqual, 0)
			So(r.Normalize(8), ShouldEqual, 1)
			So(r.Normalize(3), ShouldEqual, 0.5)
		})

		Convey("And a flat range maps everything to 0", func() {
			r := scoring.Range{Min: 4, Max: 4}
			So(r.Normalize(4), ShouldEqual, 0)
		})
	})
}

func TestColumns(t *testing.T) {
	Convey("Given the scoring columns", t, func() {
		Convey("Then there are six in a fixed order", func() {
			var names []string
			for _, c := range scoring.Columns {
				names = append(names, c.Name)
			}
			So(names, ShouldResemble, []string{"pts", "reb", "ast", "net_rating", "ts_pct", "usg_pct"})
		})
	})
}
