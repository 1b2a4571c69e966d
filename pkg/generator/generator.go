// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package generator

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"

	"github.com/devopstoolbox/devopstoolbox/pkg/defaults"
	"github.com/devopstoolbox/devopstoolbox/pkg/errors"
)

const (
	letters     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits      = "0123456789"
	punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Alphabet is the set of characters passwords are drawn from.
const Alphabet = letters + digits + punctuation

// Password returns a password of the given length with each character chosen
// uniformly from Alphabet. A length of zero selects defaults.PasswordLength.
func Password(length int) (string, error) {
	if length == 0 {
		length = defaults.PasswordLength
	}
	if length < 1 {
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest, "password length must be positive",
			map[string]any{"length": length})
	}

	limit := big.NewInt(int64(len(Alphabet)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInternal, "failed to read random source", err)
		}
		buf[i] = Alphabet[n.Int64()]
	}
	return string(buf), nil
}

// UUID returns a random (version 4) UUID in canonical form.
func UUID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, "failed to generate uuid", err)
	}
	return id.String(), nil
}
