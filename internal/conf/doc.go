// SPDX-License-Identifier: MPL-2.0

// Package conf resolves and loads project settings.
//
// The settings module name comes from the environment: YOTTA_SETTINGS_MODULE
// names the CUE file directly, or YOTTA_ENV names an environment shorthand
// ("prod" resolves to "settings_prod"). Before resolving, the conventional
// .env and .env.local files are merged into the process environment. The
// loaded settings are cached for the lifetime of the process.
package conf
