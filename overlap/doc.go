/*Package overlap implements in-memory overlap queries over genomic
  features located on named reference sequences, with 0-based half-open
  coordinates.
  Detector keeps every inserted feature, partitioned by reference
  sequence, under an interval tree that is re-finalized lazily: bulk
  loading thousands of features costs one index fixup on the next query
  rather than one per insertion.
  Union is the complementary static structure: it forgets the individual
  features and retains only the merged disjoint intervals per reference
  sequence, answering point and range membership by binary search.
*/
package overlap
