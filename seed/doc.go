// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package seed loads the starter data into an empty database.

Run performs, in order:

 1. create collection sprites
 2. create collection audio
 3. create collection scores
 4. insert {player_name: "Rick", score: 2000} into scores
 5. insert wifikun.ogg into audio
 6. insert "rick astley.jpeg" into sprites

The binary payloads are embedded base64 files under fixtures/ and are
decoded before insert.

There is no existence check. A second run against the same database fails
at step 1 with db.ErrCollectionExists, and a failure part-way leaves the
earlier steps in place.
*/
package seed
