// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package kp

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE . Currency,Membership,Metrics,System
