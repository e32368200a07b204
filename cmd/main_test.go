package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-currency-display/internal/jwt"
	"github.com/sbilibin2017/gw-currency-display/internal/models"
	"github.com/sbilibin2017/gw-currency-display/internal/repositories"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"google.golang.org/grpc"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	assert.Equal(t, "Starting service version v1.0.0, commit abcd1234, build 2025-09-26\n", buf.String())
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "public", cfg.SiteDir)
	assert.Equal(t, "memory", cfg.StorageDriver)
	assert.Equal(t, 5432, cfg.PGPort)
	assert.Equal(t, 16, cfg.PGMaxOpenConns)
	assert.Equal(t, 6379, cfg.RedisPort)
	assert.Equal(t, 0, cfg.RedisExpSecond)
	assert.Equal(t, "http", cfg.RatesSource)
	assert.Equal(t, "https://api.exchangerate-api.com/v4/latest", cfg.RatesURL)
	assert.Equal(t, "https://ipapi.co", cfg.GeoURL)
	assert.Equal(t, 5, cfg.RatesTimeoutSecond)
	assert.Equal(t, "50051", cfg.GWPort)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "currency-display-events", cfg.KafkaTopic)
	assert.Equal(t, "my_super_secret_key", cfg.SessionSecretKey)
	assert.Equal(t, 31536000, cfg.SessionExpSecond)
	assert.False(t, cfg.SessionSecure)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")
	os.Setenv("SITE_DIR", "/srv/site")
	os.Setenv("CATALOG_PATH", "https://cdn.example.com/templates.json")
	os.Setenv("STORAGE_DRIVER", "postgres")

	os.Setenv("POSTGRES_HOST", "pg.example.com")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_USER", "admin")

	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("REDIS_EXP_SECOND", "120")

	os.Setenv("RATES_SOURCE", "grpc")
	os.Setenv("GW_EXCHANGER_HOST", "grpc.example.com")
	os.Setenv("GW_EXCHANGER_PORT", "50052")

	os.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	os.Setenv("KAFKA_TOPIC", "events")

	os.Setenv("SESSION_SECRET_KEY", "supersecret")
	os.Setenv("SESSION_EXP_SECOND", "300")
	os.Setenv("SESSION_SECURE", "true")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.AppHost)
	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/srv/site", cfg.SiteDir)
	assert.Equal(t, "https://cdn.example.com/templates.json", cfg.CatalogPath)
	assert.Equal(t, "postgres", cfg.StorageDriver)
	assert.Equal(t, "pg.example.com", cfg.PGHost)
	assert.Equal(t, 5433, cfg.PGPort)
	assert.Equal(t, "admin", cfg.PGUser)
	assert.Equal(t, "redis.example.com", cfg.RedisHost)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 120, cfg.RedisExpSecond)
	assert.Equal(t, "grpc", cfg.RatesSource)
	assert.Equal(t, "grpc.example.com", cfg.GWHost)
	assert.Equal(t, "50052", cfg.GWPort)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "events", cfg.KafkaTopic)
	assert.Equal(t, "supersecret", cfg.SessionSecretKey)
	assert.Equal(t, 300, cfg.SessionExpSecond)
	assert.True(t, cfg.SessionSecure)
}

func TestParseConfig_InvalidNumber(t *testing.T) {
	resetEnv()
	os.Setenv("REDIS_PORT", "six")

	cfg, err := parseConfig("nonexistent.env")
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "REDIS_PORT")
}

func TestParseConfig_FromFile(t *testing.T) {
	resetEnv()
	path := filepath.Join(t.TempDir(), "config.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=7070\nSTORAGE_DRIVER=redis\n"), 0o644))

	cfg, err := parseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.AppPort)
	assert.Equal(t, "redis", cfg.StorageDriver)
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	_, _, err := openStore(context.Background(), &config{StorageDriver: "etcd"})
	assert.True(t, errors.Is(err, errUnknownDriver))
}

func TestOpenRateSource_UnknownSource(t *testing.T) {
	_, _, err := openRateSource(&config{RatesSource: "ftp"}, nil)
	assert.True(t, errors.Is(err, errUnknownDriver))
}

// ------------------ Mock gRPC Server ------------------
type mockExchangeServer struct {
	pb.UnimplementedExchangeServiceServer
}

// Quotes per 1 USD.
func (m *mockExchangeServer) GetExchangeRates(ctx context.Context, _ *pb.Empty) (*pb.ExchangeRatesResponse, error) {
	return &pb.ExchangeRatesResponse{
		Rates: map[string]float32{
			"USD": 1.0,
			"INR": 80.0,
			"EUR": 0.8,
		},
	}, nil
}

// Start mock gRPC server and return host:port and stop function
func startMockGRPCServer() (addr string, stop func(), err error) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", nil, err
	}
	s := grpc.NewServer()
	pb.RegisterExchangeServiceServer(s, &mockExchangeServer{})
	go s.Serve(lis)

	stop = func() {
		s.Stop()
		lis.Close()
	}
	return lis.Addr().String(), stop, nil
}

func TestOpenRateSource_GRPC(t *testing.T) {
	addr, stop, err := startMockGRPCServer()
	require.NoError(t, err)
	defer stop()

	host, port, err := net.SplitHostPort(addr)
	require.NoError(t, err)

	source, closeSource, err := openRateSource(&config{RatesSource: "grpc", GWHost: host, GWPort: port}, nil)
	require.NoError(t, err)
	defer closeSource()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rates, err := source.GetExchangeRates(ctx, models.INR)
	require.NoError(t, err)
	assert.InDelta(t, 0.0125, rates["USD"], 1e-9)
	assert.InDelta(t, 0.01, rates["EUR"], 1e-9)
	assert.InDelta(t, 1.0, rates["INR"], 1e-9)
}

// ------------------ Router integration ------------------

const testIndex = `<!DOCTYPE html><html><body>
<select id="currency-select"><option value="INR" selected="selected">INR</option><option value="USD">USD</option><option value="CAD">CAD</option></select>
<span id="plan" data-price-inr="100000">₹1,00,000</span>
<div id="templates-grid"></div><div id="no-results"></div>
</body></html>`

const testCatalog = `{"templates":[
 {"id":"clinic-crm","name":"Clinic CRM","industry":"Healthcare","category":"CRM","features":["Billing"],"baseCost":150000},
 {"id":"store-erp","name":"Store ERP","industry":"Retail","category":"ERP","features":["Stock"],"baseCost":400000}
]}`

func newUpstreams(t *testing.T) (rates, geo *httptest.Server) {
	t.Helper()
	rates = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"base": "INR", "rates": models.DefaultRates()})
	}))
	geo = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.GeoLocation{CountryName: "Canada", CountryCode: "CA"})
	}))
	t.Cleanup(rates.Close)
	t.Cleanup(geo.Close)
	return rates, geo
}

func newTestConfig(t *testing.T, ratesURL, geoURL string) *config {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(testIndex), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "templates.json"), []byte(testCatalog), 0o644))

	return &config{
		AppHost:            "127.0.0.1",
		AppPort:            "0",
		LogLevel:           "debug",
		SiteDir:            dir,
		CatalogPath:        filepath.Join(dir, "templates.json"),
		StorageDriver:      "memory",
		RatesSource:        "http",
		RatesURL:           ratesURL,
		RatesTimeoutSecond: 2,
		GeoURL:             geoURL,
		SessionSecretKey:   "testsecret",
		SessionExpSecond:   60,
	}
}

func sessionCookie(t *testing.T, res *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range res.Cookies() {
		if c.Name == jwt.CookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", jwt.CookieName)
	return nil
}

func TestRouter_VisitorJourney(t *testing.T) {
	ratesSrv, geoSrv := newUpstreams(t)
	cfg := newTestConfig(t, ratesSrv.URL, geoSrv.URL)

	ctx := context.Background()
	source, closeSource, err := openRateSource(cfg, ratesSrv.Client())
	require.NoError(t, err)
	defer closeSource()

	srv := httptest.NewServer(newRouter(cfg, newApp(ctx, cfg, repositories.NewMemoryStore(), source, http.DefaultClient)))
	defer srv.Close()

	// first visit: currency detected from the IP, session issued
	res, err := http.Get(srv.URL + "/api/v1/currency")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotEmpty(t, res.Header.Get("X-Request-ID"))
	cookie := sessionCookie(t, res)

	var cur models.CurrencyResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&cur))
	assert.Equal(t, models.CAD, cur.Currency)
	assert.Equal(t, "detected", cur.Source)
	require.NotNil(t, cur.Detection)
	require.NotNil(t, cur.Detection.Notice)
	assert.Equal(t, "Location Detected: Canada", cur.Detection.Notice.Title)

	do := func(method, path, body string) *http.Response {
		req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
		require.NoError(t, err)
		req.AddCookie(cookie)
		res, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return res
	}

	// page rendered in the detected currency, with the notice
	res = do(http.MethodGet, "/", "")
	page := readBody(t, res)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, page, `C$1,700 <small class="price-original">(₹1,00,000)</small>`)
	assert.Contains(t, page, `id="currency-notification"`)
	assert.Contains(t, page, "C$2,600+")

	// manual change is stored for the session
	res = do(http.MethodPut, "/api/v1/currency", `{"currency":"USD"}`)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	res.Body.Close()

	res = do(http.MethodGet, "/", "")
	page = readBody(t, res)
	assert.Contains(t, page, `$1,200 <small class="price-original">(₹1,00,000)</small>`)
	assert.Contains(t, page, `<option value="USD" selected="selected">`)
	assert.NotContains(t, page, `id="currency-notification"`)

	res = do(http.MethodGet, "/api/v1/price?amount=100000", "")
	assert.JSONEq(t, `{"amount":"100000","currency":"USD","converted":"1200","formatted":"$1,200"}`, readBody(t, res))

	res = do(http.MethodGet, "/api/v1/templates?industry=Retail", "")
	var list models.TemplatesResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&list))
	res.Body.Close()
	require.Len(t, list.Templates, 1)
	assert.Equal(t, "$4,800+", list.Templates[0].StartingPrice)

	res = do(http.MethodPut, "/api/v1/currency", `{"currency":"JPY"}`)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	res.Body.Close()

	res = do(http.MethodGet, "/api/v1/currencies", "")
	var supported []models.CurrencyInfo
	require.NoError(t, json.NewDecoder(res.Body).Decode(&supported))
	res.Body.Close()
	assert.Len(t, supported, 8)

	res = do(http.MethodGet, "/api/v1/rates", "")
	var resident models.RatesResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&resident))
	res.Body.Close()
	assert.Equal(t, models.INR, resident.Base)
	assert.NotNil(t, resident.UpdatedAt)

	res = do(http.MethodPost, "/api/v1/rates/refresh", "")
	var rates models.RatesResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&rates))
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotNil(t, rates.UpdatedAt)
}

func TestRouter_Routes(t *testing.T) {
	cfg := newTestConfig(t, "http://127.0.0.1:1", "http://127.0.0.1:1")
	source, closeSource, err := openRateSource(cfg, http.DefaultClient)
	require.NoError(t, err)
	defer closeSource()

	router, ok := newRouter(cfg, newApp(context.Background(), cfg, repositories.NewMemoryStore(), source, http.DefaultClient)).(chi.Routes)
	require.True(t, ok)

	var got []string
	require.NoError(t, chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		got = append(got, method+" "+route)
		return nil
	}))

	assert.ElementsMatch(t, []string{
		"GET /api/v1/rates",
		"POST /api/v1/rates/refresh",
		"GET /api/v1/currencies",
		"GET /api/v1/currency",
		"PUT /api/v1/currency",
		"GET /api/v1/price",
		"GET /api/v1/templates",
		"GET /api/v1/templates/{id}",
		"GET /swagger/*",
		"GET /*",
	}, got)
}

func readBody(t *testing.T, res *http.Response) string {
	t.Helper()
	defer res.Body.Close()
	var buf bytes.Buffer
	_, err := buf.ReadFrom(res.Body)
	require.NoError(t, err)
	return buf.String()
}

// ------------------ Full integration test ------------------
func TestRun_Success(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	ratesSrv, geoSrv := newUpstreams(t)
	cfg := newTestConfig(t, ratesSrv.URL, geoSrv.URL)
	cfg.AppPort = "8086"
	cfg.StorageDriver = "redis"
	cfg.RedisHost = redisHost
	cfg.RedisPort = redisPort.Int()
	cfg.RedisPoolSize = 10
	cfg.RedisMinIdleConns = 2

	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	select {
	case <-time.After(15 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected run to succeed, got error: %v", err)
		}
		t.Log("run completed successfully")
	}
}

func TestRun_UnknownStorage(t *testing.T) {
	cfg := &config{LogLevel: "info", StorageDriver: "etcd"}
	err := run(context.Background(), cfg)
	assert.True(t, errors.Is(err, errUnknownDriver), fmt.Sprint(err))
}
