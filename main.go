package main

import (
	"context"
	"database/sql"
	"log"
	"math/rand"
	"os"
	"time"

	riak "github.com/basho/riak-go-client"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gishub/RawDataAccessBencher/bencher"
	"github.com/gishub/RawDataAccessBencher/dbutil"
	pgx_engine "github.com/gishub/RawDataAccessBencher/engines/pgx"
	"github.com/gishub/RawDataAccessBencher/engines/rawsql"
	riak_engine "github.com/gishub/RawDataAccessBencher/engines/riak"
	"github.com/gishub/RawDataAccessBencher/mapping/adventureworks"
	"github.com/gishub/RawDataAccessBencher/populate"
	"github.com/gishub/RawDataAccessBencher/report"
	"github.com/gishub/RawDataAccessBencher/util"
)

type BenchmarkArgs struct {
	Runs           int            `yaml:"runs"`
	IndividualKeys int            `yaml:"individualKeys"`
	KeySpace       int            `yaml:"keySpace"`
	PopulateRows   int            `yaml:"populateRows"`
	Seed           int64          `yaml:"seed"`
	Engines        []EngineConfig `yaml:"engines"`
}

type EngineConfig struct {
	// rawsql-postgres | rawsql-mysql | rawsql-sqlite | pgx | riak
	Name string `yaml:"name"`
	// Connection string or riak host:port; ${VAR} references are expanded
	// from the environment (and .env)
	Connection string `yaml:"connection"`
	Table      string `yaml:"table"`
	Bucket     string `yaml:"bucket"`
}

// Prepare zerolog
func setupLogging(disableLog bool, level string) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	var zlevel zerolog.Level
	if disableLog {
		zlevel = zerolog.Disabled
	} else if level == "info" {
		zlevel = zerolog.InfoLevel
	} else {
		zlevel = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(zlevel)
}

// Returns a BenchmarkArgs struct with the information in the configFile.
func buildArgs(configFile string) *BenchmarkArgs {
	if configFile == "" {
		log.Fatal("Missing config file.")
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		log.Fatal(err)
	}

	args := BenchmarkArgs{
		Runs:           3,
		IndividualKeys: 25,
		PopulateRows:   1000,
		Seed:           1,
	}
	err = yaml.Unmarshal(data, &args)
	if err != nil {
		log.Fatal(err)
	}
	if args.KeySpace == 0 {
		args.KeySpace = args.PopulateRows
	}
	if len(args.Engines) == 0 {
		log.Fatal("No engines configured.")
	}

	return &args
}

// engineHandle bundles a strategy with the resources behind it
type engineHandle struct {
	strategy bencher.Strategy[adventureworks.SalesOrderHeader]
	sqlDB    *sql.DB
	dialect  populate.Dialect
	riak     *riak_engine.Engine
	close    func()
}

func openSQL(driver, conn string) *sql.DB {
	db := util.Try(sql.Open(driver, conn))
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)
	util.CheckErr(db.Ping())
	return db
}

// Opens the connections for one engine and builds its strategy
func openEngine(cfg EngineConfig) *engineHandle {
	conn := os.ExpandEnv(cfg.Connection)
	table := cfg.Table
	if table == "" {
		table = "Sales.SalesOrderHeader"
	}

	switch cfg.Name {
	case "rawsql-postgres":
		db := openSQL("postgres", conn)
		return &engineHandle{
			strategy: rawsql.New(db, rawsql.DialectPostgres, table),
			sqlDB:    db,
			dialect:  populate.DialectPostgres,
			close:    func() { db.Close() },
		}
	case "rawsql-mysql":
		db := openSQL("mysql", conn)
		return &engineHandle{
			strategy: rawsql.New(db, rawsql.DialectMySQL, table),
			sqlDB:    db,
			dialect:  populate.DialectMySQL,
			close:    func() { db.Close() },
		}
	case "rawsql-sqlite":
		db := openSQL("sqlite3", conn)
		return &engineHandle{
			strategy: rawsql.New(db, rawsql.DialectSQLite, table),
			sqlDB:    db,
			dialect:  populate.DialectSQLite,
			close:    func() { db.Close() },
		}
	case "pgx":
		pool := util.Try(pgx_engine.Connect(context.Background(), conn))
		return &engineHandle{
			strategy: pgx_engine.New(pool, table),
			close:    func() { pool.Close() },
		}
	case "riak":
		client := util.Try(riak.NewClient(&riak.NewClientOptions{
			RemoteAddresses: []string{conn},
		}))
		bucket := cfg.Bucket
		if bucket == "" {
			bucket = "sales_order_header"
		}
		engine := riak_engine.New(client, bucket)
		return &engineHandle{
			strategy: engine,
			riak:     engine,
			close:    func() { client.Stop() },
		}
	default:
		log.Fatalf("Engine '%s' not found.\n", cfg.Name)
		return nil
	}
}

// Draws n random keys from the populated key space
func randomKeys(rng *rand.Rand, n, keySpace int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = rng.Intn(keySpace) + 1
	}
	return keys
}

func runBenchmarks(args *BenchmarkArgs) {
	session := report.NewSession()
	rng := rand.New(rand.NewSource(args.Seed))

	for _, cfg := range args.Engines {
		handle := openEngine(cfg)
		b := util.Try(bencher.New(handle.strategy, adventureworks.OrderKey))

		zlog.Info().Str("engine", cfg.Name).Msg("Run started")
		for i := 0; i < args.Runs; i++ {
			keys := randomKeys(rng, args.IndividualKeys, args.KeySpace)

			res := util.Try(b.PerformIndividualBenchMark(keys))
			zlog.Debug().Str("engine", cfg.Name).Int("run", i).
				Int("rows", res.RowCount).Float64("fetchMs", res.FetchMs()).
				Msg("individual done")
			session.Add(res)

			res = util.Try(b.PerformSetBenchmark())
			zlog.Debug().Str("engine", cfg.Name).Int("run", i).
				Int("rows", res.RowCount).Float64("fetchMs", res.FetchMs()).
				Float64("enumMs", res.EnumerationMs()).
				Msg("set done")
			session.Add(res)
		}
		zlog.Info().Str("engine", cfg.Name).Msg("Run ended")

		handle.close()
	}

	session.Print(os.Stdout)
}

func runPopulate(args *BenchmarkArgs) {
	registry := adventureworks.Load()
	entity, ok := registry.Entity("SalesOrderHeader")
	if !ok {
		log.Fatal("SalesOrderHeader not present in the mapping registry.")
	}

	for _, cfg := range args.Engines {
		if cfg.Name == "pgx" {
			// shares its table with rawsql-postgres
			zlog.Info().Str("engine", cfg.Name).Msg("Skipping populate")
			continue
		}

		handle := openEngine(cfg)
		zlog.Info().Str("engine", cfg.Name).Int("rows", args.PopulateRows).Msg("Populating")

		switch {
		case handle.sqlDB != nil:
			table := cfg.Table
			if table == "" {
				table = "Sales.SalesOrderHeader"
			}
			if handle.dialect == populate.DialectPostgres {
				dbutil.Truncate(handle.sqlDB, table)
			} else {
				util.Try(handle.sqlDB.Exec("delete from " + table))
			}

			n := util.Try(populate.Table(handle.sqlDB, entity, table, args.PopulateRows, handle.dialect, args.Seed))

			if handle.dialect == populate.DialectPostgres {
				dbutil.VacuumAndCheckpoint(handle.sqlDB)
				zlog.Info().Str("engine", cfg.Name).Int("rows", dbutil.RowCount(handle.sqlDB, table)).
					Int64("tableBytes", dbutil.TableSize(handle.sqlDB, table)).
					Msg("Populate done")
			} else {
				zlog.Info().Str("engine", cfg.Name).Int("rows", n).Msg("Populate done")
			}

		case handle.riak != nil:
			for _, order := range populate.SalesOrders(args.PopulateRows, args.Seed) {
				util.CheckErr(handle.riak.Store(order))
			}
			zlog.Info().Str("engine", cfg.Name).Int("rows", args.PopulateRows).Msg("Populate done")
		}

		handle.close()
	}
}

var (
	configFile string
	disableLog bool
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "RawDataAccessBencher",
	Short: "Times individual and full-set row fetches across Go data-access frameworks",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(disableLog, logLevel)
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the benchmarks for every configured engine",
	Run: func(cmd *cobra.Command, cmdArgs []string) {
		runBenchmarks(buildArgs(configFile))
	},
}

var populateCmd = &cobra.Command{
	Use:   "populate",
	Short: "Fill every configured engine's store with fake order rows",
	Run: func(cmd *cobra.Command, cmdArgs []string) {
		runPopulate(buildArgs(configFile))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "Benchmark config file")
	rootCmd.PersistentFlags().BoolVar(&disableLog, "no-log", false, "Disables the log")
	rootCmd.PersistentFlags().StringVar(&logLevel, "level", "debug", "Log level (info|debug)")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(populateCmd)
}

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
