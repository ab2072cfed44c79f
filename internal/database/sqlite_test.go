package database

import (
	"database/sql"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pricing-datagen/internal/generator"
)

var _ = Describe("Sqlite", func() {
	var (
		db       *sql.DB
		tmpDir   string
		sqliteDB *SQLiteDB
	)

	// Runs before and after each test (It section)
	// To provide clean, isolated environment for each test
	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "sqlite-test-*")
		Expect(err).NotTo(HaveOccurred())

		sqliteDB = &SQLiteDB{Path: filepath.Join(tmpDir, "pricing_runs.db")}

		db, err = sqliteDB.InitDB()
		Expect(err).NotTo(HaveOccurred())
		Expect(db).NotTo(BeNil())
	})

	AfterEach(func() {
		if db != nil {
			Expect(db.Close()).To(Succeed())
		}
		Expect(os.RemoveAll(tmpDir)).To(Succeed())
	})

	Describe("InitDB", func() {
		It("creates the database file and schema", func() {
			_, err := os.Stat(sqliteDB.Path)
			Expect(err).NotTo(HaveOccurred())

			for _, table := range []string{"runs", "observations"} {
				var name string
				err := db.QueryRow(
					"SELECT name FROM sqlite_master WHERE type='table' AND name=?",
					table).Scan(&name)
				Expect(err).NotTo(HaveOccurred())
				Expect(name).To(Equal(table))
			}
		})

		It("is idempotent across reopens", func() {
			Expect(db.Close()).To(Succeed())
			var err error
			db, err = sqliteDB.InitDB()
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("CreateRun", func() {
		It("inserts a run and returns its ID", func() {
			runID, err := sqliteDB.CreateRun(db, "baseline", 1, 115)
			Expect(err).NotTo(HaveOccurred())
			Expect(runID).To(BeNumerically(">", 0))

			var name string
			var seed int64
			var rowCount int
			err = db.QueryRow(
				"SELECT run_name, seed, row_count FROM runs WHERE id=?",
				runID).Scan(&name, &seed, &rowCount)
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(Equal("baseline"))
			Expect(seed).To(Equal(int64(1)))
			Expect(rowCount).To(Equal(115))
		})

		It("returns distinct IDs for successive runs", func() {
			first, err := sqliteDB.CreateRun(db, "run-a", 1, 100)
			Expect(err).NotTo(HaveOccurred())
			second, err := sqliteDB.CreateRun(db, "run-b", 2, 100)
			Expect(err).NotTo(HaveOccurred())
			Expect(second).NotTo(Equal(first))
		})
	})

	Describe("StoreObservations", func() {
		It("stores all rows for a run", func() {
			runID, err := sqliteDB.CreateRun(db, "baseline", 1, 2)
			Expect(err).NotTo(HaveOccurred())

			rows := []generator.Observation{
				{Price: 7.5, Quantity: 960},
				{Price: 48, Quantity: 1130},
			}
			Expect(sqliteDB.StoreObservations(db, runID, rows)).To(Succeed())

			var count int
			err = db.QueryRow(
				"SELECT COUNT(*) FROM observations WHERE run_id=?",
				runID).Scan(&count)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(2))

			var price, quantity float64
			err = db.QueryRow(
				"SELECT price, quantity FROM observations WHERE run_id=? ORDER BY id LIMIT 1",
				runID).Scan(&price, &quantity)
			Expect(err).NotTo(HaveOccurred())
			Expect(price).To(Equal(7.5))
			Expect(quantity).To(Equal(960.0))
		})

		It("stores nothing for an empty dataset", func() {
			runID, err := sqliteDB.CreateRun(db, "empty", 1, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(sqliteDB.StoreObservations(db, runID, nil)).To(Succeed())

			var count int
			err = db.QueryRow("SELECT COUNT(*) FROM observations").Scan(&count)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())
		})
	})
})
