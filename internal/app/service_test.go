package service_test

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	service "github.com/okian/draftroots/internal/app"
	"github.com/okian/draftroots/internal/domain/model"
	"github.com/okian/draftroots/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

func season(player, college, team, season, draft string, pts float64) model.PlayerSeasonRecord {
	return model.PlayerSeasonRecord{
		PlayerName:       player,
		College:          college,
		TeamAbbreviation: team,
		Season:           season,
		DraftYear:        draft,
		Stats: model.Stats{
			Points: pts, Rebounds: pts / 2, Assists: pts / 4,
			NetRating: pts - 10, TrueShooting: 0.5, Usage: 0.2,
		},
	}
}

func fixture() []model.PlayerSeasonRecord {
	return []model.PlayerSeasonRecord{
		season("A1", "Duke", "BOS", "2001-02", "2001", 20),
		season("A2", "Duke", "NYK", "2001-02", "2001", 10),
		season("A3", "Kansas", "BOS", "2003-04", "2003", 15),
		season("A1", "Duke", "BOS", "2002-03", "2001", 25),
		season("U1", "Nowhere", "LAL", "2001-02", "Undrafted", 30),
	}
}

const csvBody = `player_name,college,team_abbreviation,season,draft_year,pts,reb,ast,net_rating,ts_pct,usg_pct
P1,Gonzaga,SAS,1999-00,1999,12,4,2,1,0.5,0.2
P2,Gonzaga,SAS,2000-01,2000,8,3,1,-2,0.45,0.18
`

func TestService_New(t *testing.T) {
	Convey("Given a new service with no dataset", t, func() {
		svc := service.New()

		Convey("Then queries report the missing dataset", func() {
			_, err := svc.ConnectionCounts(context.Background(), 0)
			So(errors.Is(err, service.ErrNoDataset), ShouldBeTrue)
		})

		Convey("And Load needs a path", func() {
			So(errors.Is(svc.Load(context.Background()), service.ErrNoDatasetPath), ShouldBeTrue)
		})

		Convey("And stats show nothing loaded", func() {
			stats := svc.GetStats()
			So(stats["loaded"], ShouldEqual, false)
			So(stats["undraftedSentinel"], ShouldEqual, "Undrafted")
		})
	})
}

func TestService_Queries(t *testing.T) {
	Convey("Given a service over in-memory records", t, func() {
		ctx := context.Background()
		svc := service.New(service.WithRecords(fixture()))

		Convey("When counting connections", func() {
			counts, err := svc.ConnectionCounts(ctx, 0)

			Convey("Then only rookie seasons of drafted players count", func() {
				So(err, ShouldBeNil)
				So(counts, ShouldResemble, []model.InstitutionCount{
					{Institution: "Duke", Count: 2},
					{Institution: "Kansas", Count: 1},
				})
			})

			Convey("And a limit truncates the list", func() {
				top, err := svc.ConnectionCounts(ctx, 1)
				So(err, ShouldBeNil)
				So(top, ShouldHaveLength, 1)
				So(top[0].Institution, ShouldEqual, "Duke")
			})
		})

		Convey("When averaging composite scores", func() {
			avgs, err := svc.AverageComposite(ctx)

			Convey("Then each institution has a score in [0, 1]", func() {
				So(err, ShouldBeNil)
				So(avgs, ShouldHaveLength, 2)
				for _, v := range avgs {
					So(math.IsNaN(v), ShouldBeFalse)
					So(v, ShouldBeBetweenOrEqual, 0, 1)
				}
				So(avgs["Duke"], ShouldAlmostEqual, 1.0/3, 1e-9)
			})
		})

		Convey("When asking about a team", func() {
			bos, err := svc.TopInstitutionsForTeam(ctx, "BOS", 0)
			So(err, ShouldBeNil)
			none, err := svc.TopInstitutionsForTeam(ctx, "LAL", 0)
			So(err, ShouldBeNil)

			Convey("Then ties are both present", func() {
				So(bos, ShouldHaveLength, 2)
				So(bos, ShouldContain, model.InstitutionCount{Institution: "Duke", Count: 1})
				So(bos, ShouldContain, model.InstitutionCount{Institution: "Kansas", Count: 1})
			})

			Convey("And a team with no drafted rookies gives an empty list", func() {
				So(none, ShouldNotBeNil)
				So(none, ShouldBeEmpty)
			})
		})

		Convey("When listing teams", func() {
			teams, err := svc.Teams(ctx)

			Convey("Then each rookie team appears once", func() {
				So(err, ShouldBeNil)
				So(teams, ShouldResemble, []string{"BOS", "NYK"})
			})
		})

		Convey("When the same query runs twice", func() {
			first, err := svc.AverageComposite(ctx)
			So(err, ShouldBeNil)
			second, err := svc.AverageComposite(ctx)
			So(err, ShouldBeNil)

			Convey("Then the base dataset is untouched", func() {
				So(second, ShouldResemble, first)
			})
		})
	})

	Convey("Given a custom undrafted sentinel", t, func() {
		records := fixture()
		records[4].DraftYear = "N/A"
		svc := service.New(service.WithRecords(records), service.WithUndraftedSentinel("N/A"))

		Convey("Then it is treated as undrafted", func() {
			counts, err := svc.ConnectionCounts(context.Background(), 0)
			So(err, ShouldBeNil)
			So(counts, ShouldHaveLength, 2)
		})
	})

	Convey("Given records with a malformed season", t, func() {
		records := fixture()
		records[2].Season = "03-04"
		svc := service.New(service.WithRecords(records))

		Convey("Then queries fail with a parse error", func() {
			_, err := svc.ConnectionCounts(context.Background(), 0)
			So(errors.Is(err, model.ErrParse), ShouldBeTrue)
		})
	})
}

func TestService_Load(t *testing.T) {
	Convey("Given a dataset file", t, func() {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "seasons.csv")
		So(os.WriteFile(path, []byte(csvBody), 0o600), ShouldBeNil)
		svc := service.New(service.WithDataset(path, ""))

		Convey("When loading it", func() {
			So(svc.Load(ctx), ShouldBeNil)

			Convey("Then queries answer from it", func() {
				counts, err := svc.ConnectionCounts(ctx, 0)
				So(err, ShouldBeNil)
				So(counts, ShouldResemble, []model.InstitutionCount{{Institution: "Gonzaga", Count: 2}})
			})

			Convey("And stats describe the source", func() {
				stats := svc.GetStats()
				So(stats["loaded"], ShouldEqual, true)
				So(stats["records"], ShouldEqual, 2)
				So(stats["source"], ShouldEqual, path)
			})

			Convey("And a broken reload keeps the previous dataset", func() {
				So(os.WriteFile(path, []byte("player_name,college\nX,Y\n"), 0o600), ShouldBeNil)
				err := svc.Load(ctx)
				So(errors.Is(err, model.ErrConfiguration), ShouldBeTrue)

				counts, err := svc.ConnectionCounts(ctx, 0)
				So(err, ShouldBeNil)
				So(counts, ShouldHaveLength, 1)
			})
		})
	})

	Convey("Given a missing dataset file", t, func() {
		svc := service.New(service.WithDataset(filepath.Join(t.TempDir(), "missing.csv"), ""))

		Convey("Then Load fails and nothing is served", func() {
			So(svc.Load(context.Background()), ShouldNotBeNil)
			_, err := svc.Teams(context.Background())
			So(errors.Is(err, service.ErrNoDataset), ShouldBeTrue)
		})
	})
}
