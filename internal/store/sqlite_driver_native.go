// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

//go:build !(js && wasm) && !wasip1

package store

import _ "modernc.org/sqlite"

const driverName = "sqlite"
