/*
 * logging.go, part of gocrys.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//Package logging holds the verbosity mode shared by all packages of the library.
package logging

import (
	"fmt"
	"log"
	"runtime"
	"time"
)

type Flag int

const (
	Nil Flag = iota
	Performance
	Debug
)

//This is handled this way so that the mode doesn't need to be passed to
//every function in the library.
var (
	Mode Flag = Nil
)

//MemString returns a string containing various statistics on the current
//memory usage of the program.
func MemString() string {
	ms := runtime.MemStats{}
	runtime.ReadMemStats(&ms)
	return fmt.Sprintf(
		"Alloc - %d MB; Sys - %d MB Integrated - %d MB",
		ms.Alloc>>20, ms.Sys>>20, ms.TotalAlloc>>20,
	)
}

//Timer logs the time elapsed since start, and the memory usage, when
//Mode is Performance or Debug.
func Timer(what string, start time.Time) {
	if Mode == Nil {
		return
	}
	log.Printf("%s: %s; %s", what, time.Since(start), MemString())
}

//Debugf logs the message only in Debug mode.
func Debugf(format string, a ...interface{}) {
	if Mode == Debug {
		log.Printf(format, a...)
	}
}
