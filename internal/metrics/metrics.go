package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Operation Metrics
var (
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOperationsTotal,
			Help: HelpTextOperationsTotal,
		},
		[]string{LabelOperation, LabelCode},
	)

	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameOperationDuration,
			Help:    HelpTextOperationDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelOperation},
	)
)

// Business Metrics
var (
	PlayersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlayersRegistered,
			Help: HelpTextPlayersRegistered,
		},
	)

	QuestsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuestsCompleted,
			Help: HelpTextQuestsCompleted,
		},
		[]string{LabelQuestKind},
	)

	PvPMatches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePvPMatches,
			Help: HelpTextPvPMatches,
		},
	)

	ItemsCrafted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsCrafted,
			Help: HelpTextItemsCrafted,
		},
		[]string{LabelAssetType},
	)

	ItemsRepaired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsRepaired,
			Help: HelpTextItemsRepaired,
		},
	)

	LevelUps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
		[]string{LabelSource},
	)

	RewardsMinted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardsMinted,
			Help: HelpTextRewardsMinted,
		},
		[]string{LabelSource},
	)

	TokensBurned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTokensBurned,
			Help: HelpTextTokensBurned,
		},
		[]string{LabelSource},
	)

	RewardsClaimed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardsClaimed,
			Help: HelpTextRewardsClaimed,
		},
		[]string{LabelPool},
	)

	StakeOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStakeOperations,
			Help: HelpTextStakeOperations,
		},
		[]string{LabelType, LabelPool},
	)

	SystemPaused = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSystemPaused,
			Help: HelpTextSystemPaused,
		},
	)
)

// Balancing Metrics
var (
	DailyMinted = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameDailyMinted,
			Help: HelpTextDailyMinted,
		},
	)

	DailyActions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameDailyActions,
			Help: HelpTextDailyActions,
		},
	)

	RewardMultiplier = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameRewardMultiplier,
			Help: HelpTextRewardMultiplier,
		},
	)

	CostMultiplier = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCostMultiplier,
			Help: HelpTextCostMultiplier,
		},
	)
)
