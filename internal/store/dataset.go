package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/courtside/tennis-predictor/internal/logic"
	"github.com/courtside/tennis-predictor/internal/models"
)

// ErrNoData is returned when none of the expected dataset files exist.
var ErrNoData = errors.New("dataset: no data files found")

var matchColumns = []string{
	"tourney_date", "tourney_name", "tourney_level", "surface", "best_of",
	"winner_name", "loser_name", "round",
}

// Dataset reads the ATP/WTA CSV exports (tennis_atp/, tennis_wta/ under Dir).
type Dataset struct {
	Dir string
}

func NewDataset(dir string) *Dataset {
	return &Dataset{Dir: dir}
}

type tourDir struct {
	tour string
	dir  string
}

func (d *Dataset) tours() []tourDir {
	return []tourDir{
		{models.TourATP, filepath.Join(d.Dir, "tennis_atp")},
		{models.TourWTA, filepath.Join(d.Dir, "tennis_wta")},
	}
}

// ReadPlayers loads both tours' player files, sorted by name.
func (d *Dataset) ReadPlayers(ctx context.Context) ([]models.Player, error) {
	tours := d.tours()
	perTour := make([][]models.Player, len(tours))
	found := make([]bool, len(tours))

	g, ctx := errgroup.WithContext(ctx)
	for i, t := range tours {
		i, t := i, t
		g.Go(func() error {
			path := filepath.Join(t.dir, strings.ToLower(t.tour)+"_players.csv")
			players, err := readPlayersFile(ctx, path, t.tour)
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			if err != nil {
				return err
			}
			perTour[i] = players
			found[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if !found[0] && !found[1] {
		return nil, ErrNoData
	}

	var all []models.Player
	for _, ps := range perTour {
		all = append(all, ps...)
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

// PlayerNames implements logic.PlayerNameSource.
func (d *Dataset) PlayerNames(ctx context.Context) ([]string, error) {
	players, err := d.ReadPlayers(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	return names, nil
}

// Matches implements logic.MatchSource. Every CSV in the tour directories that
// carries the match columns is read; other files are skipped.
func (d *Dataset) Matches(ctx context.Context) ([]models.Match, error) {
	tours := d.tours()
	perTour := make([][]models.Match, len(tours))

	g, ctx := errgroup.WithContext(ctx)
	for i, t := range tours {
		i, t := i, t
		g.Go(func() error {
			files, err := filepath.Glob(filepath.Join(t.dir, "*.csv"))
			if err != nil {
				return err
			}
			sort.Strings(files)
			for _, f := range files {
				ms, err := readMatchesFile(ctx, f, t.tour)
				if err != nil {
					return err
				}
				perTour[i] = append(perTour[i], ms...)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []models.Match
	for _, ms := range perTour {
		all = append(all, ms...)
	}
	if len(all) == 0 {
		return nil, ErrNoData
	}
	logic.SortByDate(all)
	return all, nil
}

// csvFile opens a CSV and indexes its header.
func csvFile(path string) (*os.File, *csv.Reader, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, err
	}
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.ReuseRecord = true
	header, err := r.Read()
	if err != nil {
		f.Close()
		if err == io.EOF {
			return nil, nil, nil, fmt.Errorf("%s: empty file", path)
		}
		return nil, nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	return f, r, cols, nil
}

func field(rec []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func readPlayersFile(ctx context.Context, path, tour string) ([]models.Player, error) {
	f, r, cols, err := csvFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []models.Player
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p, ok := playerFromRecord(rec, cols, tour)
		if ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// playerFromRecord skips rows without both names, first names of one or two
// characters (initials only) and the "X X" placeholder rows.
func playerFromRecord(rec []string, cols map[string]int, tour string) (models.Player, bool) {
	first := field(rec, cols, "name_first")
	last := field(rec, cols, "name_last")
	if first == "" || last == "" {
		return models.Player{}, false
	}
	if first == "X" && last == "X" {
		return models.Player{}, false
	}
	if utf8.RuneCountInString(first) <= 2 {
		return models.Player{}, false
	}
	return models.Player{
		Name:      first + " " + last,
		FirstName: first,
		LastName:  last,
		Tour:      tour,
		Country:   field(rec, cols, "ioc"),
		PlayerID:  field(rec, cols, "player_id"),
	}, true
}

func readMatchesFile(ctx context.Context, path, tour string) ([]models.Match, error) {
	f, r, cols, err := csvFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	for _, c := range matchColumns {
		if _, ok := cols[c]; !ok {
			return nil, nil
		}
	}

	var out []models.Match
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m, ok := matchFromRecord(rec, cols, tour)
		if ok {
			out = append(out, m)
		}
	}
	return out, nil
}

// matchFromRecord builds a winner-first match; rows without a date or either name are dropped.
func matchFromRecord(rec []string, cols map[string]int, tour string) (models.Match, bool) {
	date, err := models.ParseMatchDate(field(rec, cols, "tourney_date"))
	if err != nil {
		return models.Match{}, false
	}
	winner := NormalizeName(field(rec, cols, "winner_name"))
	loser := NormalizeName(field(rec, cols, "loser_name"))
	if winner == "" || loser == "" {
		return models.Match{}, false
	}
	bestOf, _ := strconv.Atoi(field(rec, cols, "best_of"))

	return models.Match{
		Date:       date,
		Tour:       tour,
		Tournament: field(rec, cols, "tourney_name"),
		Level:      field(rec, cols, "tourney_level"),
		Surface:    NormalizeSurface(field(rec, cols, "surface")),
		BestOf:     bestOf,
		PlayerA:    winner,
		PlayerB:    loser,
		Round:      field(rec, cols, "round"),
		Y:          1,
	}, true
}

// NormalizeName collapses whitespace and title-cases each word part,
// so "  novak   DJOKOVIC " becomes "Novak Djokovic".
func NormalizeName(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}

// NormalizeSurface trims a surface name and capitalises it ("carpet" -> "Carpet").
func NormalizeSurface(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
