package employee

import (
	"github.com/m04kA/SMC-StaffScheduler/pkg/dbmetrics"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
