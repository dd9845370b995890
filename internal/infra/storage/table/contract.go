package table

import "github.com/reservely/reservation-service/pkg/txmanager"

// Переиспользуем интерфейс из txmanager для работы с БД
type DBExecutor = txmanager.DBExecutor
