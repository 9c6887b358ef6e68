// Description: This file contains the wiring of the inventory database managers for PostgreSQL.
package postgresql

import (
	"github.com/switchscope/switchscope/internal/invsrv/db/dbmanager"
)

type switchScopeDb struct {
	cm  *catalogManager
	im  *inventoryManager
	con *connectionManager
}

func NewSwitchScopeDb(c dbmanager.PooledConn) (*catalogManager, *inventoryManager, *connectionManager) {
	s := &switchScopeDb{}
	s.cm = newCatalogManager(c)
	s.im = newInventoryManager(c)
	s.con = newConnectionManager(c)
	s.im.m = s.cm
	return s.cm, s.im, s.con
}
