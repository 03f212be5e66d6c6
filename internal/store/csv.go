package store

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"trade-journal/internal/errors"
	"trade-journal/internal/models"
)

// csvTrade is the flat CSV row shape for trade backups. Tags are joined with
// "|" so a row stays one line regardless of tag count.
type csvTrade struct {
	ID       string  `csv:"id"`
	Date     string  `csv:"date"`
	Symbol   string  `csv:"symbol"`
	Name     string  `csv:"name"`
	Side     string  `csv:"side"`
	Price    float64 `csv:"price"`
	Quantity float64 `csv:"quantity"`
	Tags     string  `csv:"tags"`
	Strategy string  `csv:"strategy"`
	Emotion  string  `csv:"emotion"`
	Memo     string  `csv:"memo"`
}

const csvDateLayout = "2006-01-02"

// ExportTrades writes every stored trade to w as CSV, oldest first.
func ExportTrades(ctx context.Context, ds DataStore, w io.Writer) (int, error) {
	trades, err := ds.GetTrades(ctx, TradeFilter{})
	if err != nil {
		return 0, errors.Wrap(err, "loading trades for export")
	}

	rows := make([]*csvTrade, 0, len(trades))
	for _, t := range trades {
		rows = append(rows, &csvTrade{
			ID:       t.ID,
			Date:     t.Day().Format(csvDateLayout),
			Symbol:   t.Symbol,
			Name:     t.Name,
			Side:     string(t.Side),
			Price:    t.Price,
			Quantity: t.Quantity,
			Tags:     strings.Join(t.Tags, "|"),
			Strategy: t.Strategy,
			Emotion:  t.Emotion,
			Memo:     t.Memo,
		})
	}

	if err := gocsv.Marshal(rows, w); err != nil {
		return 0, errors.Wrap(err, "writing csv")
	}
	return len(rows), nil
}

// ImportTrades reads CSV rows from r and saves each as a trade. Rows with an
// unparsable date or side are skipped and reported; the import continues.
func ImportTrades(ctx context.Context, ds DataStore, r io.Reader) (saved int, skipped []error, err error) {
	var rows []*csvTrade
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return 0, nil, errors.Wrap(err, "reading csv")
	}

	for _, row := range rows {
		date, perr := time.Parse(csvDateLayout, row.Date)
		if perr != nil {
			skipped = append(skipped, errors.NewTradeError(row.ID, row.Symbol, "unparsable date "+row.Date))
			continue
		}

		side := models.TradeSide(strings.ToUpper(strings.TrimSpace(row.Side)))
		if side != models.SideBuy && side != models.SideSell {
			skipped = append(skipped, errors.NewTradeError(row.ID, row.Symbol, "unknown side "+row.Side))
			continue
		}

		trade := models.Trade{
			ID:       row.ID,
			Date:     date,
			Symbol:   row.Symbol,
			Name:     row.Name,
			Side:     side,
			Price:    row.Price,
			Quantity: row.Quantity,
			Strategy: row.Strategy,
			Emotion:  row.Emotion,
			Memo:     row.Memo,
		}
		if row.Tags != "" {
			trade.Tags = strings.Split(row.Tags, "|")
		}

		if err := ds.SaveTrade(ctx, &trade); err != nil {
			return saved, skipped, err
		}
		saved++
	}
	return saved, skipped, nil
}
