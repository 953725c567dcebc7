package assets

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const erapiKeyEnv = "EXCHANGERATE_API_KEY"

var erapiKeyFlag = flag.String("erapi-key", "", "exchangerate-api.com API key for fetching exchange rates.\n If missing it will read the environment variable \""+erapiKeyEnv+"\". You can get one at https://www.exchangerate-api.com/")

func erapiKey() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *erapiKeyFlag == "" {
		*erapiKeyFlag = os.Getenv(erapiKeyEnv)
	}
	return *erapiKeyFlag
}

// diskCache implements a simple disk cache for HTTP responses
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// get from disk
	// diskcache implements a unique key per day, so the local tmp expires every day.
	key := fmt.Sprintf("%s %s %s", time.Now().Format("2006-01-02"), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	// otherwise attempt to store it in cache

	if err := c.put(key, resp); err != nil {
		// a broken cache only costs a refetch tomorrow
		return resp, nil
	}
	return resp, nil
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	file := filepath.Join(os.TempDir(), key)
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	file := filepath.Join(os.TempDir(), key)

	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}

	_, err = f.Write(content)
	f.Close()
	return err
}

// daily returns a client with a cache all with daily expire
func daily() *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{http.DefaultTransport}
	return client
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}

const erapiBase = "https://v6.exchangerate-api.com/v6"

// ERAPIProvider fetches exchange rates from exchangerate-api.com. One request
// per supported base currency yields that currency's quotes for every other
// supported currency, so both directions of each pair are stored explicitly.
// Responses are cached on disk with a daily expiry.
type ERAPIProvider struct {
	client *http.Client
	key    string
	log    zerolog.Logger
}

// NewERAPIProvider creates a provider. An empty key falls back to the
// -erapi-key flag or the environment.
func NewERAPIProvider(key string, log zerolog.Logger) (*ERAPIProvider, error) {
	if key == "" {
		key = erapiKey()
	}
	if key == "" {
		return nil, fmt.Errorf("missing exchangerate-api key: set -erapi-key or %s", erapiKeyEnv)
	}
	return &ERAPIProvider{client: daily(), key: key, log: log}, nil
}

// FetchAllRates fetches quotes for every supported base currency. A pair
// missing from one response is skipped with a warning; the table stays
// partial rather than failing the whole fetch.
func (p *ERAPIProvider) FetchAllRates() (map[string]decimal.Decimal, error) {
	rates := make(map[string]decimal.Decimal)
	for _, from := range Currencies() {
		addr := fmt.Sprintf("%s/%s/latest/%s", erapiBase, p.key, from)
		var jobj any
		if err := jwget(p.client, addr, &jobj); err != nil {
			return nil, fmt.Errorf("error fetching rates for %s: %w", from, err)
		}
		if jval, err := jsonpath.Get("$.result", jobj); err == nil {
			if s, ok := jval.(string); ok && s != "success" {
				return nil, fmt.Errorf("exchangerate-api returned %q for base %s", s, from)
			}
		}
		for _, to := range Currencies() {
			if to == from {
				continue
			}
			path := "$.conversion_rates." + to.String()
			jval, err := jsonpath.Get(path, jobj)
			if err != nil {
				p.log.Warn().Str("pair", RateKey(from, to)).Err(err).Msg("rate missing from response")
				continue
			}
			val, ok := jval.(float64)
			if !ok {
				p.log.Warn().Str("pair", RateKey(from, to)).Msgf("rate is not a number: %v", jval)
				continue
			}
			rates[RateKey(from, to)] = decimal.NewFromFloat(val)
		}
	}
	return rates, nil
}
