package export

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/nao1215/markdown"
	"github.com/sirupsen/logrus"

	"quote-scraper/pkg/models"
	"quote-scraper/pkg/utils"
)

// WriteSummary writes a Markdown summary of a finished crawl to path.
// Failures wrap utils.ErrOutputIO.
func WriteSummary(path string, result *models.CrawlResult, log *logrus.Entry) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("%w: opening '%s': %v", utils.ErrOutputIO, path, err)
	}

	md := markdown.NewMarkdown(file)

	md.H1("Crawl Summary")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Run ID", "`" + result.RunID + "`"},
			{"Base URL", result.BaseURL},
			{"Started", result.StartTime.Format("2006-01-02 15:04:05 MST")},
			{"Duration", result.Duration().Round(time.Millisecond).String()},
			{"Pages crawled", strconv.Itoa(result.PagesDone)},
			{"Quotes", strconv.Itoa(result.QuoteCount)},
			{"Authors", strconv.Itoa(result.AuthorCount)},
			{"Author cache hits", strconv.Itoa(result.CacheHits)},
		},
	})
	md.PlainText("")

	md.H2("Output Files")
	md.PlainText("")
	md.BulletList(
		"Quotes: `"+result.QuotesPath+"`",
		"Authors: `"+result.AuthorsPath+"`",
	)

	if err := md.Build(); err != nil {
		file.Close()
		return fmt.Errorf("%w: writing summary to '%s': %v", utils.ErrOutputIO, path, err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return fmt.Errorf("%w: syncing '%s': %v", utils.ErrOutputIO, path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: closing '%s': %v", utils.ErrOutputIO, path, err)
	}

	log.WithField("path", path).Info("Wrote crawl summary")
	return nil
}
