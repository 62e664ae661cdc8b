package cmd

import (
	"net/http"
	"os"

	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Jvjx01/2D-Aero-Tester/server"
	"github.com/Jvjx01/2D-Aero-Tester/solver"
	"github.com/Jvjx01/2D-Aero-Tester/store"
)

var (
	serveAddr string
	serveDB   string
	serveConf string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the solve/persistence backend",
	Run: func(cmd *cobra.Command, args []string) {
		// .env is optional; flags and real env win over it either way.
		if err := godotenv.Load(".env"); err == nil {
			log.Debug("loaded .env")
		}
		if !cmd.Flags().Changed("addr") {
			if v := os.Getenv("AEROTESTER_ADDR"); v != "" {
				serveAddr = v
			}
		}
		if !cmd.Flags().Changed("db") {
			if v := os.Getenv("AEROTESTER_DB"); v != "" {
				serveDB = v
			}
		}

		tests, err := store.Open(serveDB)
		if err != nil {
			log.Fatalf("cannot open test store at %s: %v", serveDB, err)
		}
		defer tests.Close()

		upgrader := websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		}

		sv := solver.NewSolver(solver.LoadConfig(serveConf))
		s := server.NewServer(serveAddr, upgrader, sv, tests)
		if err := s.Serve(); err != nil {
			log.Fatal("ListenAndServe: ", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":9000", "listen address")
	serveCmd.Flags().StringVar(&serveDB, "db", "./db/tests", "badger directory for persisted tests")
	serveCmd.Flags().StringVar(&serveConf, "conf", "conf/config.ini", "solver tunables file")
	rootCmd.AddCommand(serveCmd)
}
