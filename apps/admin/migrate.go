package main

import (
	gormrepos "github.com/trackademic/trackademic/storage/database/gorm"
)

var migrateFunc = gormrepos.Migrate // mockable

func (cli *commandLine) migrate() error {
	return migrateFunc(cli.db)
}
