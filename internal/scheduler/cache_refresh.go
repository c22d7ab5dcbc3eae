package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

// CacheRefresher recarrega o snapshot de métricas quando a fonte muda
type CacheRefresher interface {
	RefreshCache(ctx context.Context) (bool, error)
}

// CacheRefreshConfig representa a configuração do agendador de recarga do cache
type CacheRefreshConfig struct {
	CronSchedule   string
	RefreshEnabled bool
}

// CacheRefreshService mantém o snapshot aquecido para que a primeira requisição depois
// de uma troca do arquivo não pague a leitura completa
type CacheRefreshService struct {
	scheduler   *gocron.Scheduler
	config      CacheRefreshConfig
	refresher   CacheRefresher
	syncRunning bool
	syncMutex   sync.Mutex

	lastRefreshAt time.Time
}

func NewCacheRefreshService(refresher CacheRefresher, appConfig *config.Config) *CacheRefreshService {
	refreshConfig := CacheRefreshConfig{
		CronSchedule:   appConfig.Cache.RefreshCron,
		RefreshEnabled: appConfig.Cache.Enabled && appConfig.Cache.RefreshEnabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   refreshConfig.CronSchedule,
		"refresh_enabled": refreshConfig.RefreshEnabled,
	}).Info("Configuração do agendador de recarga do cache carregada")

	return &CacheRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		refresher: refresher,
	}
}

// Start agenda a recarga e para o agendador quando o contexto é cancelado
func (s *CacheRefreshService) Start(ctx context.Context) error {
	if !s.config.RefreshEnabled {
		logrus.Info("Recarga agendada do cache desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do cache de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga do cache de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// refresh ignora disparos sobrepostos. Retorna true quando o snapshot foi recarregado.
func (s *CacheRefreshService) refresh(ctx context.Context) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga do cache já em andamento, ignorando")
		return false
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()

	refreshed, err := s.refresher.RefreshCache(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrSourceNotFound) {
			logrus.WithError(err).Warn("Fonte de métricas ausente, snapshot descartado")
			return false
		}
		logrus.WithError(err).Error("Erro ao recarregar cache de métricas")
		return false
	}

	if !refreshed {
		logrus.Debug("Fonte de métricas sem alteração, cache mantido")
		return false
	}

	s.syncMutex.Lock()
	s.lastRefreshAt = time.Now()
	s.syncMutex.Unlock()

	logrus.WithField("duration_ms", time.Since(startTime).Milliseconds()).Info("Cache de métricas recarregado")
	return true
}

// LastRefreshAt informa a última recarga efetiva feita pelo agendador
func (s *CacheRefreshService) LastRefreshAt() time.Time {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return s.lastRefreshAt
}
