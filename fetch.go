package goggle

import (
	"fmt"
	"io"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// SourceURLs names the four remote inputs of the pipeline.
type SourceURLs struct {
	AllBookmarks      string
	StarredBookmarks  string
	Unsafe            string
	PotentiallyUnsafe string
}

// FetchText performs a single HTTP GET and returns the response body as
// text. A non-200 status is an error; there is no retry.
func FetchText(client *http.Client, url string) (string, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "goggle/1.0 (FMHY goggle generator)")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), nil
}

// FetchSources retrieves and parses all four inputs. The sources are fully
// independent until composition, so they are fetched in parallel; the first
// failed fetch or unparseable bookmark document aborts the run.
func FetchSources(client *http.Client, urls SourceURLs) (Sources, error) {
	var allText, starredText, unsafeText, plusText string

	g := new(errgroup.Group)
	g.Go(func() (err error) {
		allText, err = FetchText(client, urls.AllBookmarks)
		return err
	})
	g.Go(func() (err error) {
		starredText, err = FetchText(client, urls.StarredBookmarks)
		return err
	})
	g.Go(func() (err error) {
		unsafeText, err = FetchText(client, urls.Unsafe)
		return err
	})
	g.Go(func() (err error) {
		plusText, err = FetchText(client, urls.PotentiallyUnsafe)
		return err
	})
	if err := g.Wait(); err != nil {
		return Sources{}, err
	}

	all, err := ParseBookmarks(allText)
	if err != nil {
		return Sources{}, fmt.Errorf("failed to parse bookmark collection: %w", err)
	}
	starred, err := ParseBookmarks(starredText)
	if err != nil {
		return Sources{}, fmt.Errorf("failed to parse starred bookmarks: %w", err)
	}

	return Sources{
		All:               all,
		Starred:           starred,
		Unsafe:            ParseFilterList(unsafeText),
		PotentiallyUnsafe: ParseFilterList(plusText),
	}, nil
}
