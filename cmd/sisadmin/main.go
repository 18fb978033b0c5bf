// sisadmin is the operator console for the school database: seed a fresh
// data directory, snapshot backups, print dashboard stats, and mint bcrypt
// hashes for manual settings edits.
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"greenwood.com/sis/attendance"
	"greenwood.com/sis/config"
	"greenwood.com/sis/core"
	"greenwood.com/sis/directory"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: sisadmin <command> [args]

commands:
  init             materialize seed data files in the data directory
  backup           snapshot the attendance database into backups/
  stats            print headline counts for today
  hash <password>  print a bcrypt hash for manual settings edits`)
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	cfg, err := config.Load(os.Getenv("SIS_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "sisadmin: %v\n", err)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "init":
		err = runInit(cfg)
	case "backup":
		err = runBackup(cfg)
	case "stats":
		err = runStats(cfg)
	case "hash":
		if len(os.Args) < 3 {
			usage()
		}
		err = runHash(os.Args[2])
	default:
		usage()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "sisadmin: %v\n", err)
		os.Exit(1)
	}
}

func runInit(cfg config.Config) error {
	db, err := core.NewManager(cfg.DataDir)
	if err != nil {
		return err
	}
	if err := db.Init(); err != nil {
		return err
	}
	fmt.Printf("data directory %s initialized\n", cfg.DataDir)
	return nil
}

func runBackup(cfg config.Config) error {
	db, err := core.NewManager(cfg.DataDir)
	if err != nil {
		return err
	}
	path, err := db.CreateBackup()
	if err != nil {
		return err
	}
	fmt.Printf("backup written to %s\n", path)
	return nil
}

func runStats(cfg config.Config) error {
	db, err := core.NewManager(cfg.DataDir)
	if err != nil {
		return err
	}
	dir := directory.New(db)
	engine := attendance.NewEngine(db)

	info, err := dir.SchoolInfo()
	if err != nil {
		return err
	}
	today, err := engine.TodayAttendance()
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", info.Name, info.Year)
	fmt.Printf("employees: %d\n", info.TotalEmployees)
	fmt.Printf("students:  %d\n", info.TotalStudents)
	fmt.Printf("attendance records today: %d\n", len(today))
	return nil
}

func runHash(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	fmt.Println(string(hash))
	return nil
}
