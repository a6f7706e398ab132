// Package present renders recommend reports as console tables
package present

import (
	"io"
	"strconv"
	"strings"

	"movielens/internal/core/dataset"
	"movielens/internal/core/genres"
	"movielens/internal/platform/console"
	"movielens/internal/services/recommend/domain"
)

const dateLayout = "2006-01-02 15:04:05"

// User renders a user personalization report
func User(w io.Writer, r domain.UserReport) error {
	p := console.NewPrinter(w)
	p.Section("user info")
	p.Linef("User %d has %d distinct interactions", r.UserID, len(r.Interactions))
	p.Block(interactionTable(r.Interactions))

	p.Section("recommendations")
	p.Block(recTable(r.Recommendations))

	p.Section("top genres")
	p.Block(console.SideBySide(genreTable("USER GENRES", r.TopGenres), genreTable("RECOMMENDED GENRES", r.RecTopGenres)))
	return p.Err()
}

// Item renders a similar items report
func Item(w io.Writer, r domain.ItemReport) error {
	p := console.NewPrinter(w)
	p.Section("item info")
	p.Block(console.Table(
		[]string{"ITEM_ID", "TITLE", "GENRES"},
		[][]string{{dataset.FormatID(r.Item.ItemID), r.Item.Title, genres.Join(r.Item.Genres)}},
	))

	p.Section("similar items")
	p.Block(recTable(r.Recommendations))
	return p.Err()
}

// Rank renders a personalized ranking report
func Rank(w io.Writer, r domain.RankReport) error {
	p := console.NewPrinter(w)
	p.Section("user info")
	p.Linef("User %d has %d distinct interactions", r.UserID, len(r.Interactions))
	p.Block(interactionTable(r.Interactions))
	p.Block(genreTable("USER GENRES", r.TopGenres))

	p.Section("personalized ranking")
	p.Block(console.SideBySide(titleTable("UNRANKED", r.Unranked), titleTable("RERANKED", r.Reranked)))
	return p.Err()
}

func interactionTable(xs []dataset.UserInteraction) string {
	rows := make([][]string, 0, len(xs))
	for _, x := range xs {
		rows = append(rows, []string{
			dataset.FormatID(x.ItemID),
			x.Title,
			genres.Join(x.Genres),
			x.Time.Format(dateLayout),
		})
	}
	return console.Table([]string{"ITEM_ID", "TITLE", "GENRES", "DATE"}, rows)
}

func recTable(xs []domain.Recommendation) string {
	rows := make([][]string, 0, len(xs))
	for _, x := range xs {
		rows = append(rows, []string{
			strconv.Itoa(x.Rank),
			dataset.FormatID(x.ItemID),
			x.Title,
			genres.Join(x.Genres),
			score(x.Score),
		})
	}
	return console.Table([]string{"RANK", "ITEM_ID", "TITLE", "GENRES", "SCORE"}, rows)
}

func titleTable(header string, xs []domain.Recommendation) string {
	rows := make([][]string, 0, len(xs))
	for _, x := range xs {
		rows = append(rows, []string{strconv.Itoa(x.Rank), x.Title})
	}
	return console.Table([]string{"#", header}, rows)
}

func genreTable(header string, cs []genres.Count) string {
	rows := make([][]string, 0, len(cs))
	for _, c := range cs {
		rows = append(rows, []string{c.Genre, strconv.Itoa(c.Count)})
	}
	return console.Table([]string{strings.ToUpper(header), "COUNT"}, rows)
}

func score(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 4, 64)
}
