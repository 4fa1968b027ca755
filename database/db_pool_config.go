// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package database

import (
	"time"

	"github.com/l3montree-dev/jiralink/shared"
)

// PoolConfig holds the connection settings shared by the pgx pool, gorm and the pubsub listener
type PoolConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	DBName   string

	MaxOpenConns    int32
	MinConns        int32
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

func NewPoolConfig(cfg shared.PostgresConfig) PoolConfig {
	pool := PoolConfig{
		User:            cfg.User,
		Password:        cfg.Password,
		Host:            cfg.Host,
		Port:            cfg.Port,
		DBName:          cfg.DB,
		MaxOpenConns:    cfg.MaxOpenConns,
		MinConns:        cfg.MinConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
	}
	if pool.MaxOpenConns <= 0 {
		pool.MaxOpenConns = 25
	}
	if pool.MinConns < 0 || pool.MinConns > pool.MaxOpenConns {
		pool.MinConns = 0
	}
	return pool
}

func (c PoolConfig) DSN() string {
	return getDSN(c.Host, c.User, c.Password, c.DBName, c.Port)
}
