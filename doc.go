/*
 * Copyright 2026 Dgraph Labs, Inc. and Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

/*
Package hashcalc computes the hashes an FCM sketch uses to place flow keys in
its registers.

A sketch has several trees (depths), each hashing the key with its own
algorithm, and several levels of registers per tree. Locator turns a key into
the register index of every (depth, level) pair:

	l, err := hashcalc.NewLocator(hashcalc.DefaultOptions())
	key, err := hashcalc.ParseIPv4("192.168.1.1")
	idx, err := l.Index(key, 0, 0) // 408597

CalculateChecksum and VerifyChecksum expose the underlying algorithms, which
live in package crc.
*/
package hashcalc
