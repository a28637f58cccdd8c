// Package settings reads and writes the host configuration kept in the settings store,
// with environment variables taking precedence over stored values.
package settings

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/casualjim/scribe"
	"github.com/casualjim/scribe/article"
	"github.com/casualjim/scribe/internal/store"
	"github.com/casualjim/scribe/pkg/slogx"
	"github.com/casualjim/scribe/pkg/uuidx"
	"github.com/casualjim/scribe/prompt"
	"github.com/casualjim/scribe/provider/models"
	"github.com/fogfish/opts"
	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

const (
	KeyAPIKeys  = "api_keys"
	KeyModel    = "model"
	KeyMemories = "memories"
	KeyExamples = "writing_examples"
	KeyArticles = "articles"

	// EnvModel overrides the stored model name.
	EnvModel = "SCRIBE_MODEL"
)

// EnvKeys names the environment variable holding each provider's API key.
var EnvKeys = map[models.ProviderID]string{
	models.Google:   "GOOGLE_API_KEY",
	models.Mistral:  "MISTRAL_API_KEY",
	models.Cerebras: "CEREBRAS_API_KEY",
	models.Zhipu:    "ZHIPU_API_KEY",
}

var (
	ErrUnknownProvider = errors.New("unknown provider")
	ErrArticleNotFound = errors.New("article not found")
	ErrAmbiguousID     = errors.New("ambiguous article id")
)

// Settings is the merged view of the store and the environment.
type Settings struct {
	Model       string                  `json:"model"`
	Credentials scribe.Credentials      `json:"api_keys"`
	Memories    []prompt.Memory         `json:"memories"`
	Examples    []prompt.WritingExample `json:"writing_examples"`
}

// Load merges the stored settings with the environment; a non-empty variable wins.
func Load(s *store.Store) (Settings, error) {
	var st Settings

	st.Model = s.Get(KeyModel).String()
	if v := strings.TrimSpace(os.Getenv(EnvModel)); v != "" {
		st.Model = v
	}
	if st.Model == "" {
		st.Model = models.Default.Model
	}

	st.Credentials = scribe.Credentials{}
	for _, id := range models.ProviderIDs() {
		key := s.Get(apiKeyPath(id)).String()
		if v := strings.TrimSpace(os.Getenv(EnvKeys[id])); v != "" {
			key = v
		}
		if key != "" {
			st.Credentials[id] = key
		}
	}

	if err := decode(s.Get(KeyMemories), &st.Memories); err != nil {
		return Settings{}, fmt.Errorf("load memories: %w", err)
	}
	if err := decode(s.Get(KeyExamples), &st.Examples); err != nil {
		return Settings{}, fmt.Errorf("load writing examples: %w", err)
	}
	return st, nil
}

// Options turns the settings into aggregator options.
func (st Settings) Options() []opts.Option[scribe.Aggregator] {
	return []opts.Option[scribe.Aggregator]{
		scribe.WithModel(st.Model),
		scribe.WithCredentials(st.Credentials),
		scribe.WithMemories(st.Memories),
		scribe.WithWritingExamples(st.Examples),
	}
}

// Redacted returns a copy that is safe to print.
func (st Settings) Redacted() Settings {
	out := st
	out.Credentials = make(scribe.Credentials, len(st.Credentials))
	for id, key := range st.Credentials {
		out.Credentials[id] = slogx.Secret(id.String(), key).Value.String()
	}
	return out
}

// SetAPIKey stores the key for a provider. An empty key removes it.
func SetAPIKey(s *store.Store, id models.ProviderID, key string) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownProvider, id)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return s.Delete(apiKeyPath(id))
	}
	return s.Set(apiKeyPath(id), key)
}

// SetModel stores the logical model name. Unregistered names are accepted and resolve
// to the default binding at generation time.
func SetModel(s *store.Store, name string) error {
	return s.Set(KeyModel, strings.TrimSpace(name))
}

// AddMemory appends a memory to the stored list.
func AddMemory(s *store.Store, m prompt.Memory) error {
	var memories []prompt.Memory
	if err := decode(s.Get(KeyMemories), &memories); err != nil {
		return fmt.Errorf("add memory: %w", err)
	}
	return encode(s, KeyMemories, append(memories, m))
}

// AddWritingExample appends a writing example to the stored list.
func AddWritingExample(s *store.Store, ex prompt.WritingExample) error {
	var examples []prompt.WritingExample
	if err := decode(s.Get(KeyExamples), &examples); err != nil {
		return fmt.Errorf("add writing example: %w", err)
	}
	return encode(s, KeyExamples, append(examples, ex))
}

// Articles returns the stored articles, most recently updated first.
func Articles(s *store.Store) ([]article.Article, error) {
	var articles []article.Article
	if err := decode(s.Get(KeyArticles), &articles); err != nil {
		return nil, fmt.Errorf("load articles: %w", err)
	}
	slices.SortStableFunc(articles, func(a, b article.Article) int {
		return time.Time(b.UpdatedAt).Compare(time.Time(a.UpdatedAt))
	})
	return articles, nil
}

// SaveArticle inserts the article or replaces the stored one with the same id.
func SaveArticle(s *store.Store, a article.Article) error {
	var articles []article.Article
	if err := decode(s.Get(KeyArticles), &articles); err != nil {
		return fmt.Errorf("save article: %w", err)
	}
	if i := slices.IndexFunc(articles, func(x article.Article) bool { return x.ID == a.ID }); i >= 0 {
		articles[i] = a
	} else {
		articles = append(articles, a)
	}
	return encode(s, KeyArticles, articles)
}

// FindArticle returns the article whose id starts with prefix.
func FindArticle(s *store.Store, prefix string) (article.Article, error) {
	articles, err := Articles(s)
	if err != nil {
		return article.Article{}, err
	}
	var found []article.Article
	for _, a := range articles {
		if uuidx.HasPrefix(a.ID, prefix) {
			found = append(found, a)
		}
	}
	switch len(found) {
	case 0:
		return article.Article{}, fmt.Errorf("%w: %s", ErrArticleNotFound, prefix)
	case 1:
		return found[0], nil
	default:
		return article.Article{}, fmt.Errorf("%w: %s matches %d articles", ErrAmbiguousID, prefix, len(found))
	}
}

func apiKeyPath(id models.ProviderID) string {
	return KeyAPIKeys + "." + id.String()
}

func decode(value gjson.Result, target any) error {
	if !value.Exists() || value.Type == gjson.Null {
		return nil
	}
	return json.Unmarshal([]byte(value.Raw), target)
}

func encode(s *store.Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.SetRaw(key, raw)
}
