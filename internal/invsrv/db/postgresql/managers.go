package postgresql

import (
	"context"
	"database/sql"

	"github.com/switchscope/switchscope/internal/invsrv/db/dbmanager"
)

// Catalog Manager
type catalogManager struct {
	c dbmanager.PooledConn
}

func (cm *catalogManager) conn() *sql.Conn {
	return cm.c.Conn()
}

func newCatalogManager(c dbmanager.PooledConn) *catalogManager {
	return &catalogManager{c: c}
}

// Inventory Manager
type inventoryManager struct {
	c dbmanager.PooledConn
	m *catalogManager
}

func (im *inventoryManager) conn() *sql.Conn {
	return im.c.Conn()
}

func newInventoryManager(c dbmanager.PooledConn) *inventoryManager {
	return &inventoryManager{c: c}
}

// Connection Manager
type connectionManager struct {
	c dbmanager.PooledConn
}

func newConnectionManager(c dbmanager.PooledConn) *connectionManager {
	return &connectionManager{c: c}
}

func (cm *connectionManager) Close(ctx context.Context) {
	cm.c.Close(ctx)
}
