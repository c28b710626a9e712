package logging

// Package-level convenience wrappers, one set per category.

// Boot logs to the boot category at info level.
func Boot(format string, args ...interface{}) { Get(CategoryBoot).Info(format, args...) }

// BootDebug logs to the boot category at debug level.
func BootDebug(format string, args ...interface{}) { Get(CategoryBoot).Debug(format, args...) }

// BootWarn logs to the boot category at warn level.
func BootWarn(format string, args ...interface{}) { Get(CategoryBoot).Warn(format, args...) }

// BootError logs to the boot category at error level.
func BootError(format string, args ...interface{}) { Get(CategoryBoot).Error(format, args...) }

// Provider logs to the provider category at info level.
func Provider(format string, args ...interface{}) { Get(CategoryProvider).Info(format, args...) }

// ProviderDebug logs to the provider category at debug level.
func ProviderDebug(format string, args ...interface{}) { Get(CategoryProvider).Debug(format, args...) }

// ProviderWarn logs to the provider category at warn level.
func ProviderWarn(format string, args ...interface{}) { Get(CategoryProvider).Warn(format, args...) }

// ProviderError logs to the provider category at error level.
func ProviderError(format string, args ...interface{}) { Get(CategoryProvider).Error(format, args...) }

// Estimator logs to the estimator category at info level.
func Estimator(format string, args ...interface{}) { Get(CategoryEstimator).Info(format, args...) }

// EstimatorDebug logs to the estimator category at debug level.
func EstimatorDebug(format string, args ...interface{}) { Get(CategoryEstimator).Debug(format, args...) }

// EstimatorWarn logs to the estimator category at warn level.
func EstimatorWarn(format string, args ...interface{}) { Get(CategoryEstimator).Warn(format, args...) }

// Layout logs to the layout category at info level.
func Layout(format string, args ...interface{}) { Get(CategoryLayout).Info(format, args...) }

// LayoutDebug logs to the layout category at debug level.
func LayoutDebug(format string, args ...interface{}) { Get(CategoryLayout).Debug(format, args...) }

// UI logs to the ui category at info level.
func UI(format string, args ...interface{}) { Get(CategoryUI).Info(format, args...) }

// UIDebug logs to the ui category at debug level.
func UIDebug(format string, args ...interface{}) { Get(CategoryUI).Debug(format, args...) }

// UIError logs to the ui category at error level.
func UIError(format string, args ...interface{}) { Get(CategoryUI).Error(format, args...) }
